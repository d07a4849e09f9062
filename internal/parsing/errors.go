package parsing

import "errors"

var (
	// ErrEmptyText means the upstream text extraction produced nothing usable.
	ErrEmptyText = errors.New("extracted text is empty")
	// ErrInvalidModelOutput means both the original completion and the single
	// retry failed JSON validation.
	ErrInvalidModelOutput = errors.New("model output is not valid JSON after retry")
)

const (
	ErrorCodeTextEmpty          = "TEXT_EXTRACTION_EMPTY"
	ErrorCodeUnsupportedFile    = "UNSUPPORTED_FILE_TYPE"
	ErrorCodeModelUnavailable   = "MODEL_UNAVAILABLE"
	ErrorCodeInvalidModelOutput = "INVALID_MODEL_OUTPUT"
	ErrorCodeInternal           = "INTERNAL_ERROR"
)
