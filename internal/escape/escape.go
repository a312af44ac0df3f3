// Package escape implements string escaping for the nota quoted-string
// forms. Double- and single-quoted strings share one escape set; raw
// (backquoted) strings carry no escapes and are handled by the caller.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var (
	ErrIncomplete = errors.New("incomplete escape sequence")
	ErrEscape     = errors.New("invalid escape sequence")
)

// Unquote decodes the body of a quoted string, with the delimiters already
// removed. Both \" and \' are accepted regardless of which delimiter the
// source used. Unicode escapes may form surrogate pairs; an unpaired
// surrogate decodes to the replacement rune.
func Unquote(src mem.RO) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}
	out := make([]byte, 0, src.Len())
	for {
		out = mem.Append(out, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return "", ErrIncomplete
		}
		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\'', '\\', '/':
			out = append(out, c)
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			r, rest, err := hexRune(src)
			if err != nil {
				return "", err
			}
			src = rest
			if utf16.IsSurrogate(r) {
				// try to combine with a following \uXXXX
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					r2, rest, err := hexRune(src.SliceFrom(2))
					if err != nil {
						return "", err
					}
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						src = rest
					} else {
						r = utf8.RuneError
					}
				} else {
					r = utf8.RuneError
				}
			}
			out = utf8.AppendRune(out, r)
		default:
			return "", fmt.Errorf("%w: \\%c", ErrEscape, c)
		}
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			out = mem.Append(out, src)
			return string(out), nil
		}
	}
}

func hexRune(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, fmt.Errorf("%w: truncated \\u escape", ErrIncomplete)
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := src.At(i)
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | rune(c-'A'+10)
		default:
			return 0, src, fmt.Errorf("%w: bad hex digit %q", ErrEscape, c)
		}
	}
	return v, src.SliceFrom(4), nil
}

const hexDigits = "0123456789abcdef"

// Quote encodes s for inclusion between double quotes, without the
// delimiters. The output is minimal: only characters that must be escaped
// are.
func Quote(s mem.RO) string {
	out := make([]byte, 0, s.Len()+2)
	i := 0
	for i < s.Len() {
		r, n := mem.DecodeRune(s.SliceFrom(i))
		i += n
		switch {
		case r == '"' || r == '\\':
			out = append(out, '\\', byte(r))
		case r == '\n':
			out = append(out, '\\', 'n')
		case r == '\r':
			out = append(out, '\\', 'r')
		case r == '\t':
			out = append(out, '\\', 't')
		case r == '\b':
			out = append(out, '\\', 'b')
		case r == '\f':
			out = append(out, '\\', 'f')
		case r < 0x20:
			out = append(out, '\\', 'u', '0', '0',
				hexDigits[r>>4], hexDigits[r&15])
		default:
			out = utf8.AppendRune(out, r)
		}
	}
	return string(out)
}
