package rec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sobadon/pulserec/domain/model/capture"
	"github.com/sobadon/pulserec/internal/fileutil"
	"github.com/sobadon/pulserec/internal/timeutil"
)

const outputExtension = ".mp3"

// 対話で録音設定を埋める
// 空欄は base（環境変数由来のデフォルト）に倒す
func collectConfig(reader *bufio.Reader, out io.Writer, base config) capture.Config {
	nameInput := prompt(reader, out, fmt.Sprintf("output filename [%s]: ", base.OutputFile))
	outputPath := resolveFilename(nameInput, base.OutputFile)

	fmt.Fprintf(out, "recording length (all blank = %s)\n", base.Duration)
	hourInput := prompt(reader, out, "  hours: ")
	minuteInput := prompt(reader, out, "  minutes: ")
	secondInput := prompt(reader, out, "  seconds: ")
	duration := resolveDuration(out, base, hourInput, minuteInput, secondInput)

	return capture.Config{
		OutputPath:   outputPath,
		Duration:     duration,
		SourceFormat: capture.SourceFormat(base.SourceFormat),
		SourceDevice: base.SourceDevice,
	}
}

func resolveFilename(input string, fallback string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		input = fallback
	}
	return fileutil.EnsureExtension(fileutil.SanitizeReplaceName(input), outputExtension)
}

func resolveDuration(out io.Writer, base config, hourInput, minuteInput, secondInput string) time.Duration {
	if strings.TrimSpace(hourInput) == "" &&
		strings.TrimSpace(minuteInput) == "" &&
		strings.TrimSpace(secondInput) == "" {
		return base.Duration
	}

	duration, fellBack := timeutil.ResolveDuration(hourInput, minuteInput, secondInput)
	if fellBack {
		fmt.Fprintf(out, "could not make sense of that length, falling back to %s\n", timeutil.FallbackDuration)
	}
	return duration
}

// 先頭が y/Y のときだけ録音に進む
func confirmStart(reader *bufio.Reader, out io.Writer) bool {
	answer := prompt(reader, out, "start recording? [y/N]: ")
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

func prompt(reader *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF は空欄入力と同じ扱い
		return ""
	}
	return strings.TrimSpace(line)
}
