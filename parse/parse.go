// Package parse builds lossless syntax trees from nota source.
//
// [Parse] never fails: malformed input is wrapped in error nodes and
// reported as diagnostics, and the returned tree always re-renders the
// input byte for byte.
package parse

import (
	"github.com/nota-format/nota/debug"
	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/syntax"
	"github.com/nota-format/nota/token"
)

// tEOF marks exhaustion of the significant token stream.
const tEOF token.TokenType = -1

// Parse tokenizes and parses src. The diagnostics cover both lexing and
// parsing and are sorted by range start.
func Parse(src []byte, opts ...ParseOption) (*syntax.Tree, []diag.Diag) {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	toks, diags := token.Tokenize(nil, src)
	p := &parser{
		toks:     toks,
		b:        syntax.NewBuilder(src),
		diags:    diags,
		maxDepth: o.maxDepth,
	}
	p.document()
	diag.Sort(p.diags)
	return p.b.Build(), p.diags
}

type parser struct {
	toks []token.Token
	i    int
	b    *syntax.Builder

	diags    []diag.Diag
	depth    int
	maxDepth int

	lastSigEnd int // end offset of the last significant token consumed
}

// sig returns the index of the next significant token, or len(toks).
func (p *parser) sig() int {
	j := p.i
	for j < len(p.toks) && p.toks[j].Type.IsTrivia() {
		j++
	}
	return j
}

// at returns the type of the next significant token without consuming
// anything, or tEOF.
func (p *parser) at() token.TokenType {
	j := p.sig()
	if j >= len(p.toks) {
		return tEOF
	}
	return p.toks[j].Type
}

// sigTok returns the next significant token. Callers check at() first.
func (p *parser) sigTok() *token.Token { return &p.toks[p.sig()] }

// flushTrivia emits pending trivia into the open node, implementing the
// leading-trivia attachment rule: trivia belongs to the node that receives
// the next significant token.
func (p *parser) flushTrivia() {
	for p.i < len(p.toks) && p.toks[p.i].Type.IsTrivia() {
		p.b.Token(p.toks[p.i])
		p.i++
	}
}

// bump emits pending trivia and then the next significant token.
func (p *parser) bump() {
	p.flushTrivia()
	if p.i >= len(p.toks) {
		panic("parse: bump at end of input")
	}
	tok := p.toks[p.i]
	p.b.Token(tok)
	p.i++
	p.lastSigEnd = tok.End()
}

func (p *parser) diagAt(span diag.Span, msg string) {
	if debug.Parse() {
		debug.Logf("parse error %s: %s\n", span, msg)
	}
	p.diags = append(p.diags, diag.Diag{Span: span, Stage: diag.Parse, Msg: msg})
}

// gap is the zero-or-more-byte span between the last consumed significant
// token and the next one (or end of input).
func (p *parser) gap() diag.Span {
	end := p.lastSigEnd
	if j := p.sig(); j < len(p.toks) {
		end = p.toks[j].Start
	}
	return diag.Span{Start: p.lastSigEnd, End: end}
}

func (p *parser) document() {
	p.b.Start(syntax.KindDocument)
	seenValue := false
	seenAny := false
	for p.at() != tEOF {
		if seenValue {
			seenAny = true
			p.errorRun(nil, "unexpected trailing content")
			continue
		}
		t := p.at()
		if isValueStart(t) || t == token.TAnno {
			seenAny = true
			produced, _ := p.value()
			seenValue = produced
			continue
		}
		seenAny = true
		p.errorRun(func(t token.TokenType) bool {
			return isValueStart(t) || t == token.TAnno
		}, "expected value")
	}
	p.flushTrivia()
	p.b.Finish()
	if !seenAny {
		p.diagAt(diag.Span{Start: 0, End: 0}, ErrEmptyDoc.Error())
	}
}

// value parses annotation* (object | array | scalar). produced reports
// whether a value node was built; sawAnno whether any annotation markers
// were consumed. A marker run with no following value is left for the DOM
// projector to report, so it is not an error here.
func (p *parser) value() (produced, sawAnno bool) {
	for p.at() == token.TAnno {
		p.b.Start(syntax.KindAnnotation)
		p.bump()
		p.b.Finish()
		sawAnno = true
	}
	switch p.at() {
	case token.TLCurl:
		p.container(p.object)
	case token.TLSquare:
		p.container(p.array)
	case token.TString:
		p.scalar(syntax.KindString)
	case token.TInteger:
		p.scalar(syntax.KindInteger)
	case token.TFloat:
		p.scalar(syntax.KindFloat)
	case token.TTrue, token.TFalse:
		p.scalar(syntax.KindBool)
	case token.TNull:
		p.scalar(syntax.KindNull)
	case token.TError:
		// the lexer already reported this span
		p.b.Start(syntax.KindError)
		p.bump()
		p.b.Finish()
	default:
		return false, sawAnno
	}
	return true, sawAnno
}

func (p *parser) scalar(kind syntax.Kind) {
	p.b.Start(kind)
	p.bump()
	p.b.Finish()
}

// container runs an object or array parse under the depth bound. Past the
// bound the whole balanced construct becomes one error node.
func (p *parser) container(parse func()) {
	if p.depth >= p.maxDepth {
		p.deepErrorRun()
		return
	}
	p.depth++
	parse()
	p.depth--
}

func (p *parser) object() {
	p.b.Start(syntax.KindObject)
	p.bump() // '{'
	needSep := false
	for {
		switch t := p.at(); {
		case t == token.TRCurl:
			p.bump()
			p.b.Finish()
			return
		case t == tEOF:
			p.diagAt(p.gap(), "unterminated object")
			p.flushTrivia()
			p.b.Finish()
			return
		case t == token.TComma:
			if !needSep {
				p.diagAt(p.sigTok().Span(), "unexpected ','")
			}
			p.bump()
			needSep = false
		case needSep:
			p.diagAt(p.gap(), "expected ',' or '}'")
			needSep = false
		case t == token.TIdent || t == token.TString:
			p.entry()
			needSep = true
		default:
			p.errorRun(func(t token.TokenType) bool {
				switch t {
				case token.TComma, token.TRCurl, token.TIdent, token.TString:
					return true
				}
				return false
			}, "expected object key")
		}
	}
}

func (p *parser) entry() {
	p.b.Start(syntax.KindEntry)
	p.b.Start(syntax.KindKey)
	p.bump()
	p.b.Finish()
	missingColon := false
	if p.at() == token.TColon {
		p.bump()
	} else {
		missingColon = true
	}
	if t := p.at(); isValueStart(t) || t == token.TAnno {
		if missingColon {
			p.diagAt(p.gap(), "expected ':'")
		}
		p.value()
	} else {
		// one diagnostic for the whole truncated entry
		p.diagAt(p.gap(), "expected value")
	}
	p.b.Finish()
}

func (p *parser) array() {
	p.b.Start(syntax.KindArray)
	p.bump() // '['
	needSep := false
	for {
		switch t := p.at(); {
		case t == token.TRSquare:
			p.bump()
			p.b.Finish()
			return
		case t == tEOF:
			p.diagAt(p.gap(), "unterminated array")
			p.flushTrivia()
			p.b.Finish()
			return
		case t == token.TComma:
			if !needSep {
				p.diagAt(p.sigTok().Span(), "unexpected ','")
			}
			p.bump()
			needSep = false
		case needSep:
			p.diagAt(p.gap(), "expected ',' or ']'")
			needSep = false
		case isValueStart(t) || t == token.TAnno:
			produced, _ := p.value()
			needSep = produced
		default:
			p.errorRun(func(t token.TokenType) bool {
				switch t {
				case token.TComma, token.TRSquare, token.TAnno:
					return true
				}
				return isValueStart(t)
			}, "expected value")
			needSep = true
		}
	}
}

// errorRun wraps a run of tokens in an error node: at least one significant
// token, then up to but excluding the first token stop accepts. One
// diagnostic covers the whole run, so a malformed region errs once rather
// than cascading.
func (p *parser) errorRun(stop func(token.TokenType) bool, msg string) {
	p.b.Start(syntax.KindError)
	var span diag.Span
	n := 0
	for {
		t := p.at()
		if t == tEOF {
			break
		}
		if n > 0 && stop != nil && stop(t) {
			break
		}
		s := p.sigTok().Span()
		if n == 0 {
			span = s
		} else {
			span = span.Cover(s)
		}
		p.bump()
		n++
	}
	p.b.Finish()
	if n == 0 {
		span = p.gap()
	}
	p.diagAt(span, msg)
}

// deepErrorRun consumes one balanced construct past the nesting bound,
// tracking bracket balance only. The cursor strictly advances.
func (p *parser) deepErrorRun() {
	p.b.Start(syntax.KindError)
	open := p.sigTok().Span()
	span := open
	depth := 0
	for {
		t := p.at()
		if t == tEOF {
			break
		}
		switch t {
		case token.TLCurl, token.TLSquare:
			depth++
		case token.TRCurl, token.TRSquare:
			depth--
		}
		span = span.Cover(p.sigTok().Span())
		p.bump()
		if depth <= 0 {
			break
		}
	}
	p.b.Finish()
	p.diagAt(span, ErrDepth.Error())
}

func isValueStart(t token.TokenType) bool {
	switch t {
	case token.TLCurl, token.TLSquare, token.TString, token.TInteger,
		token.TFloat, token.TTrue, token.TFalse, token.TNull, token.TError:
		return true
	}
	return false
}
