package rec

import (
	"fmt"
	"io"

	"github.com/sobadon/pulserec/domain/model/capture"
)

func printProbe(out io.Writer, probe capture.Probe) {
	if probe.EncoderAvailable {
		fmt.Fprintln(out, "ffmpeg is installed")
	} else {
		fmt.Fprintln(out, "warning: ffmpeg does not appear to be installed or is not in PATH")
		fmt.Fprintln(out, "  Debian/Ubuntu: sudo apt update && sudo apt install ffmpeg")
	}

	if probe.SuggestedSource != "" {
		fmt.Fprintf(out, "hint: monitor source candidate: %s\n", probe.SuggestedSource)
		fmt.Fprintln(out, "  (set PULSEREC_SOURCE_DEVICE to capture desktop audio from it)")
	}
}

func printSummary(out io.Writer, config capture.Config) {
	fmt.Fprintln(out, "resolved configuration:")
	fmt.Fprintf(out, "  output:   %s\n", config.OutputPath)
	fmt.Fprintf(out, "  duration: %s\n", config.Duration)
	fmt.Fprintf(out, "  format:   %s\n", config.SourceFormat)
	fmt.Fprintf(out, "  device:   %s\n", config.SourceDevice)
}

func printResult(out io.Writer, config capture.Config, result *capture.Result) {
	switch result.Outcome {
	case capture.OutcomeCompleted:
		fmt.Fprintf(out, "recording finished, audio saved to %s\n", config.OutputPath)

	case capture.OutcomeEmptyOutput:
		fmt.Fprintf(out, "ffmpeg reported success, but %s is missing or empty\n", config.OutputPath)
		fmt.Fprintln(out, "this can happen if the audio source is silent or not capturing correctly")
		printEncoderLog(out, result.Log)
		printTroubleshooting(out, config)

	case capture.OutcomeFailed:
		fmt.Fprintf(out, "error during recording, ffmpeg exited with code %d\n", result.ExitCode)
		printEncoderLog(out, result.Log)
		printTroubleshooting(out, config)

	case capture.OutcomeInterrupted:
		if result.PartialUsable() {
			fmt.Fprintf(out, "recording interrupted, partial file saved to %s (%d bytes)\n",
				config.OutputPath, result.FileSize)
		} else {
			fmt.Fprintln(out, "recording interrupted, no usable output was produced")
			printEncoderLog(out, result.Log)
		}
	}
}

func printToolMissing(out io.Writer, config capture.Config) {
	fmt.Fprintln(out, "error: ffmpeg command not found, nothing was recorded")
	printTroubleshooting(out, config)
}

func printEncoderLog(out io.Writer, encoderLog string) {
	if encoderLog == "" {
		return
	}
	fmt.Fprintln(out, "ffmpeg output:")
	fmt.Fprintln(out, encoderLog)
}

func printTroubleshooting(out io.Writer, config capture.Config) {
	fmt.Fprintln(out, "troubleshooting:")
	fmt.Fprintln(out, "  1. ensure ffmpeg is installed (sudo apt install ffmpeg)")
	fmt.Fprintf(out, "  2. verify source format (%s) and device (%s) are correct for your system\n",
		config.SourceFormat, config.SourceDevice)
	fmt.Fprintln(out, "  3. run `pactl list sources` and look for a name ending in .monitor,")
	fmt.Fprintln(out, "     e.g. alsa_output.pci-0000_00_1f.3.analog-stereo.monitor")
	fmt.Fprintln(out, "  4. when capturing desktop audio on WSL, enable 'Stereo Mix' (or equivalent)")
	fmt.Fprintln(out, "     in the Windows sound settings first")
}
