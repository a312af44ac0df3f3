package token

import "errors"

var (
	ErrBadUTF8         = errors.New("bad utf8")
	ErrUnterminated    = errors.New("unterminated string")
	ErrUnterminatedBlk = errors.New("unterminated block comment")
	ErrNumber          = errors.New("malformed number")
	ErrAnnotationName  = errors.New("annotation name expected")
	ErrUnexpectedBytes = errors.New("unrecognized input")
	ErrNewlineInString = errors.New("newline in string")
)
