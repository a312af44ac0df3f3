package textpos

import (
	"errors"
	"testing"
)

func TestPosition(t *testing.T) {
	src := "ab\ncd\n\nxyz"
	m := New([]byte(src), false)

	type pt struct {
		off  int
		line int
		col  int
	}
	pts := []pt{
		{off: 0, line: 0, col: 0},
		{off: 1, line: 0, col: 1},
		{off: 2, line: 0, col: 2},
		{off: 3, line: 1, col: 0},
		{off: 5, line: 1, col: 2},
		{off: 6, line: 2, col: 0},
		{off: 7, line: 3, col: 0},
		{off: 9, line: 3, col: 2},
		{off: 10, line: 3, col: 3},
	}
	for _, p := range pts {
		pos, err := m.Position(p.off)
		if err != nil {
			t.Errorf("offset %d: %v", p.off, err)
			continue
		}
		if pos.Line != p.line || pos.Col != p.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", p.off, pos.Line, pos.Col, p.line, p.col)
		}
		back, err := m.Offset(pos)
		if err != nil {
			t.Errorf("offset %d: %v", p.off, err)
			continue
		}
		if back != p.off {
			t.Errorf("round trip %d: got %d", p.off, back)
		}
	}
	if m.NumLines() != 4 {
		t.Errorf("got %d lines want 4", m.NumLines())
	}
}

func TestPositionRange(t *testing.T) {
	m := New([]byte("abc"), false)
	if _, err := m.Position(4); !errors.Is(err, ErrRange) {
		t.Errorf("got %v want ErrRange", err)
	}
	if _, err := m.Position(-1); !errors.Is(err, ErrRange) {
		t.Errorf("got %v want ErrRange", err)
	}
	// one past the last byte is addressable
	if _, err := m.Position(3); err != nil {
		t.Errorf("got %v want nil", err)
	}
}

func TestUTF16Position(t *testing.T) {
	// "héllo 𝄞\nx" - é is 1 utf-16 unit, 𝄞 is a surrogate pair
	src := "héllo \U0001d11ex\nend"
	m := New([]byte(src), true)

	type pt struct {
		off  int
		line int
		col  int
	}
	pts := []pt{
		{off: 0, line: 0, col: 0},
		{off: 1, line: 0, col: 1},  // before é
		{off: 3, line: 0, col: 2},  // after é (2 bytes)
		{off: 7, line: 0, col: 6},  // before 𝄞
		{off: 11, line: 0, col: 8}, // after 𝄞 (4 bytes, 2 units)
		{off: 13, line: 1, col: 0},
	}
	for _, p := range pts {
		pos, err := m.UTF16Position(p.off)
		if err != nil {
			t.Errorf("offset %d: %v", p.off, err)
			continue
		}
		if pos.Line != p.line || pos.Col != p.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", p.off, pos.Line, pos.Col, p.line, p.col)
		}
		back, err := m.UTF16ColOffset(pos.Line, pos.Col)
		if err != nil {
			t.Errorf("offset %d: %v", p.off, err)
			continue
		}
		if back != p.off {
			t.Errorf("round trip %d: got %d", p.off, back)
		}
	}
}

func TestUTF16NotTracked(t *testing.T) {
	m := New([]byte("abc"), false)
	if _, err := m.UTF16Position(0); !errors.Is(err, ErrNoUTF16) {
		t.Errorf("got %v want ErrNoUTF16", err)
	}
}

func TestUTF16ColSaturates(t *testing.T) {
	m := New([]byte("ab\ncd"), true)
	// column past the end of the line maps to the line end
	off, err := m.UTF16ColOffset(0, 99)
	if err != nil {
		t.Fatal(err)
	}
	if off != 2 {
		t.Errorf("got %d want 2", off)
	}
	if _, err := m.UTF16ColOffset(7, 0); !errors.Is(err, ErrRange) {
		t.Errorf("got %v want ErrRange", err)
	}
}

func TestLineStart(t *testing.T) {
	m := New([]byte("ab\ncd"), false)
	off, err := m.LineStart(1)
	if err != nil {
		t.Fatal(err)
	}
	if off != 3 {
		t.Errorf("got %d want 3", off)
	}
	if _, err := m.LineStart(2); !errors.Is(err, ErrRange) {
		t.Errorf("got %v want ErrRange", err)
	}
}
