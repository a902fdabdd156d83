package rec

import "time"

type config struct {
	OutputFile   string        `env:"OUTPUT_FILE" envDefault:"desktop_audio.mp3"`
	Duration     time.Duration `env:"DURATION" envDefault:"24h"`
	SourceFormat string        `env:"SOURCE_FORMAT" envDefault:"pulse"`
	SourceDevice string        `env:"SOURCE_DEVICE" envDefault:"default"`

	EncoderBinary string `env:"ENCODER_BINARY" envDefault:"ffmpeg"`
	PactlBinary   string `env:"PACTL_BINARY" envDefault:"pactl"`

	// 中断要求から kill までの猶予
	KillGrace time.Duration `env:"KILL_GRACE" envDefault:"5s"`
}
