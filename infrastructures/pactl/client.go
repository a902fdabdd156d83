package pactl

import (
	"github.com/sobadon/pulserec/domain/repository"
)

type client struct {
	binary string
}

func New(binary string) repository.SourceLister {
	if binary == "" {
		binary = "pactl"
	}

	return &client{
		binary: binary,
	}
}
