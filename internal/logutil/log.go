package logutil

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 対話ツールなので人間向けの ConsoleWriter で stderr に出す
// （stdout はプロンプト・結果表示用にあけておく）
func NewLogger() zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	zerolog.CallerMarshalFunc = func(file string, line int) string {
		filename := filepath.Base(file)
		return filename + ":" + strconv.Itoa(line)
	}

	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	return logger
}
