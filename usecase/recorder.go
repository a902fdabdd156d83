package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/pulserec/domain/model/capture"
	"github.com/sobadon/pulserec/domain/repository"
	"github.com/sobadon/pulserec/internal/errutil"
	"github.com/sobadon/pulserec/internal/fileutil"
)

type ucRecorder struct {
	encoder repository.Encoder
	sources repository.SourceLister
}

func NewRecorder(
	encoder repository.Encoder,
	sources repository.SourceLister,
) *ucRecorder {
	return &ucRecorder{
		encoder: encoder,
		sources: sources,
	}
}

// 環境をのぞくだけ
// 何が返ってきても録音設定には手を出さない
func (r *ucRecorder) Probe(ctx context.Context) capture.Probe {
	probe := capture.Probe{
		EncoderAvailable: r.encoder.Available(ctx),
	}

	source, err := r.sources.DetectMonitorSource(ctx)
	if err != nil {
		log.Ctx(ctx).Debug().Msgf("source detection gave up: %+v", err)
		return probe
	}
	probe.SuggestedSource = source

	return probe
}

// 録音を一回実行して結果を分類する
// エンコーダの起動自体に失敗したときだけ error
// （errutil.ErrEncoderNotFound / errutil.ErrEncoder）
func (r *ucRecorder) Rec(ctx context.Context, config capture.Config) (*capture.Result, error) {
	err := fileutil.MkdirAllIfNotExist(filepath.Dir(config.OutputPath))
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	run, err := r.encoder.Rec(ctx, config)
	if err != nil {
		return nil, err
	}

	result := &capture.Result{
		ExitCode: run.ExitCode,
		FileSize: outputFileSize(config.OutputPath),
		Log:      run.Log,
	}

	switch {
	case run.Interrupted:
		result.Outcome = capture.OutcomeInterrupted
	case run.ExitCode == 0 && result.FileSize > 0:
		result.Outcome = capture.OutcomeCompleted
	case run.ExitCode == 0:
		result.Outcome = capture.OutcomeEmptyOutput
	default:
		result.Outcome = capture.OutcomeFailed
	}

	log.Ctx(ctx).Info().Msgf("rec done (outcome = %s, exit = %d, size = %d)",
		result.Outcome, result.ExitCode, result.FileSize)
	return result, nil
}

func outputFileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
