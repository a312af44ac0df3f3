package textpos

import "errors"

var (
	ErrRange   = errors.New("offset out of range")
	ErrNoUTF16 = errors.New("utf-16 tracking not enabled")
)
