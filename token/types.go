package token

import (
	"fmt"

	"github.com/nota-format/nota/diag"
)

type TokenType int

const (
	TError TokenType = iota
	TSpace
	TLineComment
	TBlockComment
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TNull
	TIdent
	TAnno
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TError:        "TError",
		TSpace:        "TSpace",
		TLineComment:  "TLineComment",
		TBlockComment: "TBlockComment",
		TLCurl:        "TLCurl",
		TRCurl:        "TRCurl",
		TLSquare:      "TLSquare",
		TRSquare:      "TRSquare",
		TComma:        "TComma",
		TColon:        "TColon",
		TString:       "TString",
		TInteger:      "TInteger",
		TFloat:        "TFloat",
		TTrue:         "TTrue",
		TFalse:        "TFalse",
		TNull:         "TNull",
		TIdent:        "TIdent",
		TAnno:         "TAnno",
	}[t]
	if !ok {
		return "<unknown token type>"
	}
	return s
}

// IsTrivia reports whether tokens of this type are whitespace or comments,
// preserved for losslessness but invisible to the grammar.
func (t TokenType) IsTrivia() bool {
	switch t {
	case TSpace, TLineComment, TBlockComment:
		return true
	}
	return false
}

// Token is one classified slice of the source. Bytes aliases the source
// buffer; tokens own no storage of their own.
type Token struct {
	Type  TokenType
	Start int
	Bytes []byte
}

func (t *Token) End() int { return t.Start + len(t.Bytes) }

func (t *Token) Span() diag.Span {
	return diag.Span{Start: t.Start, End: t.End()}
}

func (t *Token) Text() string { return string(t.Bytes) }

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s %q", t.Type, t.Span(), t.Bytes)
}
