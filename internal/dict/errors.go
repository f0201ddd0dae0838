package dict

import "errors"

var (
	// ErrUnknownCategory is returned for a category id outside Categories.
	ErrUnknownCategory = errors.New("unknown dictionary category")

	// ErrInvalidFormat is returned when an import document has the wrong shape.
	ErrInvalidFormat = errors.New("invalid dictionary file format")

	// ErrInvalidWords is returned when a category holds non-string entries.
	ErrInvalidWords = errors.New("invalid dictionary words")
)
