// Package diag defines the error model shared by the lexer, parser and DOM
// projector: recoverable failures are accumulated as [Diag] values carrying
// a byte range, never surfaced as hard errors.
package diag

import (
	"fmt"
	"sort"
)

// Span is a half-open byte range [Start, End) into some source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) Contains(off int) bool { return off >= s.Start && off < s.End }

// Cover returns the smallest span containing both s and o.
func (s Span) Cover(o Span) Span {
	if o.Start < s.Start {
		s.Start = o.Start
	}
	if o.End > s.End {
		s.End = o.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Stage identifies which front-end stage produced a diagnostic.
type Stage int

const (
	Lex Stage = iota
	Parse
	Project
)

func (s Stage) String() string {
	switch s {
	case Lex:
		return "lex"
	case Parse:
		return "parse"
	case Project:
		return "projection"
	}
	return "<unknown stage>"
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(d []byte) error {
	switch string(d) {
	case "lex":
		*s = Lex
	case "parse":
		*s = Parse
	case "projection":
		*s = Project
	default:
		return fmt.Errorf("unrecognized stage %q", d)
	}
	return nil
}

// Diag is one recorded failure. It holds no reference to any tree, only a
// byte range, so it may outlive the parse that produced it.
type Diag struct {
	Span  Span
	Stage Stage
	Msg   string
}

func (d Diag) String() string {
	return fmt.Sprintf("%s error at %s: %s", d.Stage, d.Span, d.Msg)
}

// Diagf constructs a Diag with a formatted message.
func Diagf(stage Stage, span Span, format string, args ...any) Diag {
	return Diag{Span: span, Stage: stage, Msg: fmt.Sprintf(format, args...)}
}

// Sort orders diagnostics by range start, then end, then stage. Diagnostics
// from different stages sharing a range are kept distinct.
func Sort(ds []Diag) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := &ds[i], &ds[j]
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Span.End != b.Span.End {
			return a.Span.End < b.Span.End
		}
		return a.Stage < b.Stage
	})
}
