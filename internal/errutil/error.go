package errutil

var (
	ErrEncoderNotFound = NewInternalError("encoder not found")
	ErrEncoder         = NewInternalError("encoder error")
	ErrEmptyOutput     = NewInternalError("output file missing or empty")
	ErrSourceList      = NewInternalError("source list error")
	// 分類できない系
	ErrInternal = NewInternalError("internal something error")
)
