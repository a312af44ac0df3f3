// Package token provides tokenization for the nota format.
//
// [Tokenize] classifies every byte of its input: the returned tokens are
// contiguous, non-overlapping, and cover the whole source. Whitespace and
// comments are preserved as trivia tokens and unrecognizable input is
// preserved as error tokens, so tokenization never fails; lexical problems
// are reported as diagnostics alongside the token slice.
package token

import (
	"unicode/utf8"

	"github.com/nota-format/nota/diag"
)

// Tokenize appends the tokens of src to dst and returns it together with
// any lexical diagnostics, ordered by position.
func Tokenize(dst []Token, src []byte) ([]Token, []diag.Diag) {
	lx := &lexer{src: src, toks: dst}
	for lx.i < len(lx.src) {
		lx.next()
	}
	return lx.toks, lx.diags
}

type lexer struct {
	src   []byte
	i     int
	toks  []Token
	diags []diag.Diag
}

func (lx *lexer) emit(t TokenType, start int) {
	lx.toks = append(lx.toks, Token{
		Type:  t,
		Start: start,
		Bytes: lx.src[start:lx.i],
	})
}

func (lx *lexer) report(err error, start int) {
	lx.diags = append(lx.diags, diag.Diag{
		Span:  diag.Span{Start: start, End: lx.i},
		Stage: diag.Lex,
		Msg:   err.Error(),
	})
}

func (lx *lexer) next() {
	start := lx.i
	c := lx.src[lx.i]
	switch {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		lx.space(start)
	case c == '{':
		lx.i++
		lx.emit(TLCurl, start)
	case c == '}':
		lx.i++
		lx.emit(TRCurl, start)
	case c == '[':
		lx.i++
		lx.emit(TLSquare, start)
	case c == ']':
		lx.i++
		lx.emit(TRSquare, start)
	case c == ',':
		lx.i++
		lx.emit(TComma, start)
	case c == ':':
		lx.i++
		lx.emit(TColon, start)
	case c == '/':
		lx.comment(start)
	case c == '"' || c == '\'':
		lx.quoted(start, c)
	case c == '`':
		lx.raw(start)
	case c == '-' || c == '+' || c >= '0' && c <= '9':
		lx.number(start)
	case isIdentStart(c):
		lx.ident(start)
	case c == '@':
		lx.annotation(start)
	default:
		lx.garbage(start)
	}
}

func (lx *lexer) space(start int) {
	for lx.i < len(lx.src) {
		switch lx.src[lx.i] {
		case ' ', '\t', '\r', '\n':
			lx.i++
			continue
		}
		break
	}
	lx.emit(TSpace, start)
}

func (lx *lexer) comment(start int) {
	if lx.i+1 >= len(lx.src) {
		lx.i++
		lx.emit(TError, start)
		lx.report(ErrUnexpectedBytes, start)
		return
	}
	switch lx.src[lx.i+1] {
	case '/':
		lx.i += 2
		for lx.i < len(lx.src) && lx.src[lx.i] != '\n' {
			lx.i++
		}
		lx.emit(TLineComment, start)
	case '*':
		lx.i += 2
		for lx.i < len(lx.src) {
			if lx.src[lx.i] == '*' && lx.i+1 < len(lx.src) && lx.src[lx.i+1] == '/' {
				lx.i += 2
				lx.emit(TBlockComment, start)
				return
			}
			lx.i++
		}
		// still trivia so that downstream consumers keep working
		lx.emit(TBlockComment, start)
		lx.report(ErrUnterminatedBlk, start)
	default:
		lx.garbage(start)
	}
}

func (lx *lexer) quoted(start int, delim byte) {
	lx.i++
	for lx.i < len(lx.src) {
		c := lx.src[lx.i]
		switch c {
		case delim:
			lx.i++
			lx.emit(TString, start)
			return
		case '\\':
			lx.i++
			if lx.i < len(lx.src) && lx.src[lx.i] != '\n' {
				lx.i++
			}
		case '\n':
			lx.emit(TError, start)
			lx.report(ErrNewlineInString, start)
			return
		default:
			lx.i++
		}
	}
	lx.emit(TError, start)
	lx.report(ErrUnterminated, start)
}

func (lx *lexer) raw(start int) {
	lx.i++
	for lx.i < len(lx.src) {
		if lx.src[lx.i] == '`' {
			lx.i++
			lx.emit(TString, start)
			return
		}
		lx.i++
	}
	lx.emit(TError, start)
	lx.report(ErrUnterminated, start)
}

func (lx *lexer) number(start int) {
	n := len(lx.src)
	if c := lx.src[lx.i]; c == '-' || c == '+' {
		lx.i++
		if lx.i >= n || !isDigit(lx.src[lx.i]) {
			lx.garbageFrom(start)
			return
		}
	}
	if lx.src[lx.i] == '0' && lx.i+1 < n {
		switch lx.src[lx.i+1] {
		case 'x', 'X':
			lx.radix(start, isHexDigit)
			return
		case 'o', 'O':
			lx.radix(start, func(c byte) bool { return c >= '0' && c <= '7' })
			return
		case 'b', 'B':
			lx.radix(start, func(c byte) bool { return c == '0' || c == '1' })
			return
		}
	}
	for lx.i < n && isDigit(lx.src[lx.i]) {
		lx.i++
	}
	isFloat := false
	if lx.i < n && lx.src[lx.i] == '.' {
		if lx.i+1 >= n || !isDigit(lx.src[lx.i+1]) {
			lx.i++
			lx.emit(TError, start)
			lx.report(ErrNumber, start)
			return
		}
		isFloat = true
		lx.i++
		for lx.i < n && isDigit(lx.src[lx.i]) {
			lx.i++
		}
	}
	if lx.i < n && (lx.src[lx.i] == 'e' || lx.src[lx.i] == 'E') {
		j := lx.i + 1
		if j < n && (lx.src[j] == '+' || lx.src[j] == '-') {
			j++
		}
		if j >= n || !isDigit(lx.src[j]) {
			lx.i++
			lx.emit(TError, start)
			lx.report(ErrNumber, start)
			return
		}
		isFloat = true
		lx.i = j
		for lx.i < n && isDigit(lx.src[lx.i]) {
			lx.i++
		}
	}
	if isFloat {
		lx.emit(TFloat, start)
	} else {
		lx.emit(TInteger, start)
	}
}

func (lx *lexer) radix(start int, digit func(byte) bool) {
	lx.i += 2 // 0x / 0o / 0b
	ndigits := 0
	for lx.i < len(lx.src) && digit(lx.src[lx.i]) {
		lx.i++
		ndigits++
	}
	if ndigits == 0 {
		lx.emit(TError, start)
		lx.report(ErrNumber, start)
		return
	}
	lx.emit(TInteger, start)
}

func (lx *lexer) ident(start int) {
	for lx.i < len(lx.src) && isIdentPart(lx.src[lx.i]) {
		lx.i++
	}
	switch string(lx.src[start:lx.i]) {
	case "true":
		lx.emit(TTrue, start)
	case "false":
		lx.emit(TFalse, start)
	case "null":
		lx.emit(TNull, start)
	default:
		lx.emit(TIdent, start)
	}
}

func (lx *lexer) annotation(start int) {
	lx.i++
	if lx.i >= len(lx.src) || !isIdentStart(lx.src[lx.i]) {
		lx.emit(TError, start)
		lx.report(ErrAnnotationName, start)
		return
	}
	for lx.i < len(lx.src) && isIdentPart(lx.src[lx.i]) {
		lx.i++
	}
	lx.emit(TAnno, start)
}

// garbage consumes a maximal run of bytes that cannot start any token and
// reports it as a single error token.
func (lx *lexer) garbage(start int) {
	bad := ErrUnexpectedBytes
	if r, _ := utf8.DecodeRune(lx.src[lx.i:]); r == utf8.RuneError {
		bad = ErrBadUTF8
	}
	for lx.i < len(lx.src) {
		r, sz := utf8.DecodeRune(lx.src[lx.i:])
		if r < utf8.RuneSelf && (canStartToken(byte(r)) || isSpaceByte(byte(r))) {
			break
		}
		lx.i += sz
	}
	if lx.i == start {
		lx.i++
	}
	lx.emit(TError, start)
	lx.report(bad, start)
}

// garbageFrom reports src[start:i+...] after a token scan went bad partway.
func (lx *lexer) garbageFrom(start int) {
	if lx.i == start {
		lx.i++
	}
	lx.emit(TError, start)
	lx.report(ErrUnexpectedBytes, start)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

func canStartToken(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ',', ':', '/', '"', '\'', '`', '-', '+', '@':
		return true
	}
	return isDigit(c) || isIdentStart(c)
}
