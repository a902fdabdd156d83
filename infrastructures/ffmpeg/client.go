package ffmpeg

import (
	"time"

	"github.com/sobadon/pulserec/domain/repository"
)

type client struct {
	binary string

	// 中断要求から kill までの猶予
	killGrace time.Duration
}

func New(binary string, killGrace time.Duration) repository.Encoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	if killGrace <= 0 {
		killGrace = 5 * time.Second
	}

	return &client{
		binary:    binary,
		killGrace: killGrace,
	}
}
