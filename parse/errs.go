package parse

import "errors"

var (
	ErrEmptyDoc = errors.New("empty document")
	ErrDepth    = errors.New("exceeds maximum nesting depth")
)
