package rec

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sobadon/pulserec/domain/model/capture"
	"github.com/sobadon/pulserec/infrastructures/ffmpeg"
	"github.com/sobadon/pulserec/infrastructures/pactl"
	"github.com/sobadon/pulserec/internal/errutil"
	"github.com/sobadon/pulserec/internal/fileutil"
	"github.com/sobadon/pulserec/internal/logutil"
	"github.com/sobadon/pulserec/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	var assumeYes bool
	var nonInteractive bool

	rootCmd := &cobra.Command{
		Use:   "rec",
		Short: "record desktop audio once",
		// 失敗の中身は run() が報告し切るので cobra には黙っていてもらう
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes, nonInteractive)
		},
	}
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the start confirmation")
	rootCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "no prompts, use env defaults as-is")
	return rootCmd
}

func run(in io.Reader, out io.Writer, assumeYes bool, nonInteractive bool) error {
	log := log.With().Str("run_id", uuid.NewString()).Logger()
	ctx := log.WithContext(context.Background())
	log.Info().Msg("start")

	var config config
	err := env.Parse(&config, env.Options{
		Prefix: "PULSEREC_",
		OnSet: func(tag string, value interface{}, isDefault bool) {
			log.Debug().Msgf("Set %s to %v (default? %v)", tag, value, isDefault)
		},
	})
	if err != nil {
		return err
	}

	encoder := ffmpeg.New(config.EncoderBinary, config.KillGrace)
	sources := pactl.New(config.PactlBinary)
	ucRecorder := usecase.NewRecorder(encoder, sources)

	probe := ucRecorder.Probe(ctx)
	printProbe(out, probe)

	reader := bufio.NewReader(in)
	var captureConfig capture.Config
	if nonInteractive {
		captureConfig = capture.Config{
			OutputPath:   fileutil.EnsureExtension(config.OutputFile, outputExtension),
			Duration:     config.Duration,
			SourceFormat: capture.SourceFormat(config.SourceFormat),
			SourceDevice: config.SourceDevice,
		}
	} else {
		captureConfig = collectConfig(reader, out, config)
	}

	printSummary(out, captureConfig)

	if !assumeYes && !nonInteractive {
		if !confirmStart(reader, out) {
			fmt.Fprintln(out, "aborted, nothing recorded")
			log.Info().Msg("user aborted")
			return nil
		}
	}

	// Ctrl+C で「自然終了待ち」から「終了要求 → 猶予 → kill」へ切り替わる
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "recording for %s ... (Ctrl+C to stop early)\n", captureConfig.Duration)
	result, err := ucRecorder.Rec(ctx, captureConfig)
	if err != nil {
		if errors.Is(err, errutil.ErrEncoderNotFound) {
			printToolMissing(out, captureConfig)
		}
		return err
	}

	printResult(out, captureConfig, result)

	switch result.Outcome {
	case capture.OutcomeFailed:
		return errors.Wrapf(errutil.ErrEncoder, "encoder exited with code %d", result.ExitCode)
	case capture.OutcomeEmptyOutput:
		return errors.Wrap(errutil.ErrEmptyOutput, captureConfig.OutputPath)
	}

	return nil
}
