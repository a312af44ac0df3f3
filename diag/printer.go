package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/nota-format/nota/textpos"
)

// Printer writes human-readable diagnostics, one per line, in the form
//
//	path:line:col: stage error: message
type Printer struct {
	Path  string
	Color bool

	w io.Writer
	m *textpos.Mapper
}

// NewPrinter returns a printer for diagnostics of src. Color defaults to on
// when w is a terminal.
func NewPrinter(w io.Writer, path string, src []byte) *Printer {
	p := &Printer{
		Path: path,
		w:    w,
		m:    textpos.New(src, false),
	}
	if f, ok := w.(*os.File); ok {
		p.Color = isatty.IsTerminal(f.Fd())
	}
	return p
}

var (
	stageColor = color.New(color.FgRed, color.Bold).SprintFunc()
	posColor   = color.New(color.Bold).SprintFunc()
)

// Print writes ds in order. Callers sort with [Sort] first for stable
// output.
func (p *Printer) Print(ds []Diag) error {
	for _, d := range ds {
		pos, err := p.m.Position(d.Span.Start)
		if err != nil {
			return err
		}
		loc := fmt.Sprintf("%s:%s", p.Path, pos)
		stage := fmt.Sprintf("%s error", d.Stage)
		if p.Color {
			loc = posColor(loc)
			stage = stageColor(stage)
		}
		if _, err := fmt.Fprintf(p.w, "%s: %s: %s\n", loc, stage, d.Msg); err != nil {
			return err
		}
	}
	return nil
}
