package ffmpeg

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/pulserec/domain/model/capture"
	"github.com/sobadon/pulserec/internal/errutil"
)

func (c *client) Rec(ctx context.Context, config capture.Config) (*capture.RunResult, error) {
	var buf bytes.Buffer

	cmd := exec.Command(c.binary, buildArgs(config)...)
	// 子には端末を渡さない
	// 対話入力は -nostdin でも切っているが Stdin 自体も繋がない
	cmd.Stdin = nil
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	log.Ctx(ctx).Debug().Msgf("encoder start ... (config = %+v)", config)
	log.Ctx(ctx).Debug().Msg(cmd.String())
	err := cmd.Start()
	if err != nil {
		// PATH になければ ErrNotFound、絶対パス指定で無ければ ErrNotExist
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errutil.ErrEncoderNotFound, err.Error())
		}
		return nil, errors.Wrap(errutil.ErrEncoder, err.Error())
	}

	waitCh := make(chan error, 1)
	go func() {
		waitCh <- cmd.Wait()
	}()

	select {
	case waitErr := <-waitCh:
		return &capture.RunResult{
			ExitCode: exitCode(waitErr),
			Log:      buf.String(),
		}, nil

	case <-ctx.Done():
		log.Ctx(ctx).Debug().Msgf("interrupt: ask encoder to stop (grace = %s)", c.killGrace)
		_ = cmd.Process.Signal(os.Interrupt)

		var waitErr error
		select {
		case waitErr = <-waitCh:
		case <-time.After(c.killGrace):
			log.Ctx(ctx).Warn().Msg("encoder did not stop in time, kill")
			_ = cmd.Process.Kill()
			waitErr = <-waitCh
		}

		return &capture.RunResult{
			ExitCode:    exitCode(waitErr),
			Interrupted: true,
			Log:         buf.String(),
		}, nil
	}
}

func buildArgs(config capture.Config) []string {
	return []string{
		"-y",
		"-loglevel", "warning", // とりあえず決め打ち
		"-nostdin",
		"-nostats",
		"-f", config.SourceFormat.String(),
		"-i", config.SourceDevice,
		"-t", strconv.Itoa(int(config.Duration.Seconds())),
		"-acodec", "libmp3lame",
		"-b:a", "192k",
		config.OutputPath,
	}
}

func exitCode(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
