package query

import "errors"

var (
	ErrCompile = errors.New("query compile error")
	ErrRun     = errors.New("query run error")
)
