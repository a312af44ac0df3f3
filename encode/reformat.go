package encode

import (
	"strings"

	"github.com/nota-format/nota/token"
)

// Reformat normalizes whitespace at the token level: canonical two-space
// indents, one entry per line, a space after ':'. Comments and every
// significant token survive, so malformed regions reformat as well as
// clean ones.
func Reformat(src []byte) []byte {
	toks, _ := token.Tokenize(nil, src)
	var (
		sb      strings.Builder
		depth   int
		newline bool
		first   = true
	)
	indent := func() {
		sb.WriteByte('\n')
		for i := 0; i < depth; i++ {
			sb.WriteString("  ")
		}
	}
	sep := func() {
		if first {
			first = false
			return
		}
		if newline {
			indent()
			newline = false
			return
		}
		sb.WriteByte(' ')
	}
	n := len(toks)
	for i := 0; i < n; i++ {
		tok := toks[i]
		switch tok.Type {
		case token.TSpace:
			continue
		case token.TLineComment, token.TBlockComment:
			if newline || first {
				sep()
			} else {
				sb.WriteByte(' ')
			}
			sb.Write(tok.Bytes)
			if tok.Type == token.TLineComment {
				newline = true
			}
		case token.TLCurl, token.TLSquare:
			sep()
			sb.Write(tok.Bytes)
			if j := nextSig(toks, i+1); j >= 0 && closes(tok.Type, toks[j].Type) && !commentBetween(toks, i+1, j) {
				sb.Write(toks[j].Bytes)
				i = j
				continue
			}
			depth++
			newline = true
		case token.TRCurl, token.TRSquare:
			if depth > 0 {
				depth--
			}
			newline = true
			sep()
			sb.Write(tok.Bytes)
		case token.TComma:
			sb.WriteByte(',')
			newline = true
			first = false
		case token.TColon:
			sb.WriteByte(':')
		default:
			sep()
			sb.Write(tok.Bytes)
		}
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}

func nextSig(toks []token.Token, i int) int {
	for ; i < len(toks); i++ {
		if !toks[i].Type.IsTrivia() {
			return i
		}
	}
	return -1
}

// commentBetween reports whether toks[i:j] holds a comment; a container
// with only comments inside must not collapse to {} or [].
func commentBetween(toks []token.Token, i, j int) bool {
	for ; i < j; i++ {
		switch toks[i].Type {
		case token.TLineComment, token.TBlockComment:
			return true
		}
	}
	return false
}

func closes(open, close token.TokenType) bool {
	return open == token.TLCurl && close == token.TRCurl ||
		open == token.TLSquare && close == token.TRSquare
}
