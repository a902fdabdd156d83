//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"

	"github.com/sobadon/pulserec/domain/model/capture"
)

type Encoder interface {
	// エンコーダが起動できて version 確認が exit 0 になるか
	Available(ctx context.Context) bool

	// config に従って録音する
	// ctx がキャンセルされたら子プロセスへ終了要求 → 猶予後 kill
	// 起動自体に失敗したときだけ error を返す
	// - errutil.ErrEncoderNotFound
	// - errutil.ErrEncoder
	Rec(ctx context.Context, config capture.Config) (*capture.RunResult, error)
}

type SourceLister interface {
	// モニターソースっぽい名前をひとつ提案する
	// 返されるエラー
	// - errutil.ErrSourceList
	DetectMonitorSource(ctx context.Context) (string, error)
}
