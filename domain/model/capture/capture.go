package capture

import "time"

// 一回分の録音設定
// 起動時に一度だけ組み立てて、値渡しで使い回す
type Config struct {
	// 保存先ファイルパス（.mp3 付き）
	OutputPath string

	// 録音時間
	Duration time.Duration

	// ffmpeg の -f に渡す入力フォーマット
	SourceFormat SourceFormat

	// ffmpeg の -i に渡すデバイス名
	// 中身はこちらでは解釈しない
	SourceDevice string
}

// 環境調査の結果
// あくまで提案であって Config には反映しない
type Probe struct {
	EncoderAvailable bool

	// モニターソースっぽい名前が見つかればそれ
	// 見つからなければ空
	SuggestedSource string
}

// エンコーダを一回走らせた生の結果
type RunResult struct {
	ExitCode    int
	Interrupted bool

	// エンコーダの吐いた stdout/stderr
	Log string
}

// RunResult と出力ファイルの状態から分類した最終結果
type Result struct {
	Outcome  Outcome
	ExitCode int
	FileSize int64
	Log      string
}

// 中断されたが使えそうな部分ファイルが残っているか
func (r *Result) PartialUsable() bool {
	return r.Outcome == OutcomeInterrupted && r.FileSize > 0
}
