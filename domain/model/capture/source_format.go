package capture

type SourceFormat string

const (
	FormatPulse = SourceFormat("pulse")
	FormatAlsa  = SourceFormat("alsa")
)

func (f SourceFormat) String() string {
	return string(f)
}
