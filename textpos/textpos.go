// Package textpos maps byte offsets in a fixed source text to line/column
// positions and, optionally, to UTF-16 code unit offsets as used by editor
// protocols.
//
// A [Mapper] is built once per text and is immutable afterwards, so it may
// be shared freely across goroutines.
package textpos

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Position is a zero-based line and column. Col counts bytes from the line
// start; UTF16Position yields columns in UTF-16 code units instead.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

// Mapper translates byte offsets within one source text.
type Mapper struct {
	n     int
	src   []byte
	lines []int // byte offset of each line start, lines[0] == 0
	u16   []int // cumulative utf-16 units at each line start, nil unless tracked
}

// New builds a Mapper for src in one linear scan. When trackUTF16 is set
// the mapper additionally records cumulative UTF-16 unit counts per line
// so that [Mapper.UTF16Position] and [Mapper.UTF16Offset] are available.
func New(src []byte, trackUTF16 bool) *Mapper {
	m := &Mapper{
		n:     len(src),
		lines: []int{0},
	}
	if trackUTF16 {
		m.src = src
		m.u16 = []int{0}
	}
	units := 0
	for i := 0; i < len(src); {
		c := src[i]
		if c == '\n' {
			i++
			units++
			m.lines = append(m.lines, i)
			if trackUTF16 {
				m.u16 = append(m.u16, units)
			}
			continue
		}
		if c < utf8.RuneSelf {
			i++
			units++
			continue
		}
		r, sz := utf8.DecodeRune(src[i:])
		i += sz
		units += utf16.RuneLen(r)
	}
	return m
}

// Len returns the length in bytes of the mapped text.
func (m *Mapper) Len() int { return m.n }

// NumLines returns the number of lines in the mapped text. A trailing
// newline opens a final empty line.
func (m *Mapper) NumLines() int { return len(m.lines) }

func (m *Mapper) check(off int) error {
	if off < 0 || off > m.n {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrRange, off, m.n)
	}
	return nil
}

// line returns the index of the line containing off. off must be in range.
func (m *Mapper) line(off int) int {
	return sort.Search(len(m.lines), func(i int) bool {
		return m.lines[i] > off
	}) - 1
}

// Position returns the line and byte column of off. Offsets equal to the
// text length address the end of the text; anything beyond fails with
// [ErrRange] rather than clamping.
func (m *Mapper) Position(off int) (Position, error) {
	if err := m.check(off); err != nil {
		return Position{}, err
	}
	ln := m.line(off)
	return Position{Line: ln, Col: off - m.lines[ln]}, nil
}

// UTF16Position returns the line and UTF-16 column of off.
func (m *Mapper) UTF16Position(off int) (Position, error) {
	if m.u16 == nil {
		return Position{}, ErrNoUTF16
	}
	if err := m.check(off); err != nil {
		return Position{}, err
	}
	ln := m.line(off)
	return Position{Line: ln, Col: m.unitsIn(m.lines[ln], off)}, nil
}

// UTF16Offset returns the number of UTF-16 code units preceding off in the
// whole text.
func (m *Mapper) UTF16Offset(off int) (int, error) {
	if m.u16 == nil {
		return 0, ErrNoUTF16
	}
	if err := m.check(off); err != nil {
		return 0, err
	}
	ln := m.line(off)
	return m.u16[ln] + m.unitsIn(m.lines[ln], off), nil
}

// unitsIn counts UTF-16 units in src[from:to]. An offset landing inside a
// multi-byte rune counts the whole rune, matching how protocol clients
// round positions to rune boundaries.
func (m *Mapper) unitsIn(from, to int) int {
	units := 0
	for i := from; i < to; {
		r, sz := utf8.DecodeRune(m.src[i:])
		i += sz
		units += utf16.RuneLen(r)
	}
	return units
}

// LineStart returns the byte offset of the start of the given zero-based
// line.
func (m *Mapper) LineStart(line int) (int, error) {
	if line < 0 || line >= len(m.lines) {
		return 0, fmt.Errorf("%w: line %d not in [0, %d)", ErrRange, line, len(m.lines))
	}
	return m.lines[line], nil
}

// Offset converts a byte-column position back to a byte offset.
func (m *Mapper) Offset(p Position) (int, error) {
	start, err := m.LineStart(p.Line)
	if err != nil {
		return 0, err
	}
	off := start + p.Col
	if err := m.check(off); err != nil {
		return 0, err
	}
	return off, nil
}

// UTF16ColOffset converts a line and UTF-16 column to a byte offset. Columns
// past the end of the line saturate to the line end, per protocol custom.
func (m *Mapper) UTF16ColOffset(line, col int) (int, error) {
	if m.u16 == nil {
		return 0, ErrNoUTF16
	}
	start, err := m.LineStart(line)
	if err != nil {
		return 0, err
	}
	end := m.n
	if line+1 < len(m.lines) {
		end = m.lines[line+1] - 1
	}
	units := 0
	i := start
	for i < end && units < col {
		r, sz := utf8.DecodeRune(m.src[i:])
		i += sz
		units += utf16.RuneLen(r)
	}
	return i, nil
}
