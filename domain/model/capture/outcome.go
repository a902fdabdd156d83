package capture

type Outcome string

const (
	OutcomeCompleted = Outcome("completed")

	// エンコーダは正常終了を名乗ったが出力ファイルが無い・空
	OutcomeEmptyOutput = Outcome("empty_output")

	OutcomeFailed      = Outcome("failed")
	OutcomeInterrupted = Outcome("interrupted")
)

func (o Outcome) String() string {
	return string(o)
}
