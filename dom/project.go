package dom

import (
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/nota-format/nota/debug"
	"github.com/nota-format/nota/diag"
	"github.com/nota-format/nota/internal/escape"
	"github.com/nota-format/nota/syntax"
	"github.com/nota-format/nota/token"
)

// FromSyntax projects a syntax tree onto a semantic tree. It never fails:
// every value-bearing syntax subtree yields exactly one node, with Invalid
// standing in where conversion was impossible, and problems are reported as
// projection diagnostics sorted by range start.
func FromSyntax(t *syntax.Tree) (*Node, []diag.Diag) {
	p := &projector{}
	root := p.document(t.Root())
	diag.Sort(p.diags)
	return root, p.diags
}

type projector struct {
	diags []diag.Diag
}

func (p *projector) errf(span diag.Span, format string, args ...any) {
	if debug.Project() {
		debug.Logf("projection error %s: "+format+"\n", append([]any{span}, args...)...)
	}
	p.diags = append(p.diags, diag.Diagf(diag.Project, span, format, args...))
}

func (p *projector) document(doc syntax.Node) *Node {
	nodes := doc.Nodes()
	i := 0
	root := p.valueAt(nodes, &i)
	if root == nil {
		root = Null()
	}
	// trailing error regions wrapped by parser recovery
	for ; i < len(nodes); i++ {
		root.Strays = append(root.Strays, p.value(nodes[i]))
	}
	return root
}

// valueAt projects annotation markers and the following value starting at
// nodes[*i], advancing *i past what it consumed. It returns nil when
// nodes[*i] is not a value and no markers were present.
func (p *projector) valueAt(nodes []syntax.Node, i *int) *Node {
	var (
		anno     string
		annoSpan diag.Span
		haveAnno bool
	)
	for *i < len(nodes) && nodes[*i].Kind() == syntax.KindAnnotation {
		name, span := annoIdent(nodes[*i])
		if !haveAnno {
			anno, annoSpan, haveAnno = name, span, true
		} else {
			// a single identifier slot per value; extras are reported
			p.errf(span, "multiple annotations on one value")
		}
		*i++
	}
	if *i >= len(nodes) {
		if haveAnno {
			p.errf(annoSpan, "annotation %q has no value", anno)
			return &Node{Type: InvalidType, Span: annoSpan, Anno: anno, AnnoSpan: annoSpan}
		}
		return nil
	}
	v := p.value(nodes[*i])
	*i++
	if haveAnno {
		v.Anno = anno
		v.AnnoSpan = annoSpan
	}
	return v
}

func (p *projector) value(n syntax.Node) *Node {
	if n.Kind().IsScalar() {
		return p.scalar(n)
	}
	switch n.Kind() {
	case syntax.KindObject:
		return p.object(n)
	case syntax.KindArray:
		return p.array(n)
	}
	// errors, and anything unexpected, degrade to Invalid; annotations
	// never reach here
	return p.invalid(n)
}

func (p *projector) scalar(n syntax.Node) *Node {
	switch n.Kind() {
	case syntax.KindString:
		return p.strLit(n)
	case syntax.KindInteger:
		return p.intLit(n)
	case syntax.KindFloat:
		return p.floatLit(n)
	case syntax.KindBool:
		tok, span := sigToken(n)
		return &Node{Type: BoolType, Span: span, Bool: tok.Type == token.TTrue}
	}
	// KindNull
	_, span := sigToken(n)
	return &Node{Type: NullType, Span: span}
}

func (p *projector) invalid(n syntax.Node) *Node {
	span := sigSpan(n)
	return &Node{Type: InvalidType, Span: span, Raw: sigText(n)}
}

func (p *projector) object(n syntax.Node) *Node {
	obj := &Node{Type: ObjectType, Span: sigSpan(n)}
	byName := map[string]int{}
	for _, c := range n.Nodes() {
		switch c.Kind() {
		case syntax.KindEntry:
			e := p.entry(c)
			if prev, ok := byName[e.Key.Name]; ok {
				// last write wins, reported against the earlier key
				p.errf(obj.Entries[prev].Key.Span, "duplicate key %q", e.Key.Name)
				obj.Entries[prev].Key = e.Key
				obj.Entries[prev].Value = e.Value
				continue
			}
			byName[e.Key.Name] = len(obj.Entries)
			obj.Entries = append(obj.Entries, e)
		default:
			obj.Strays = append(obj.Strays, p.value(c))
		}
	}
	return obj
}

func (p *projector) entry(n syntax.Node) *Entry {
	nodes := n.Nodes()
	e := &Entry{}
	i := 0
	if i < len(nodes) && nodes[i].Kind() == syntax.KindKey {
		e.Key = p.key(nodes[i])
		i++
	}
	e.Value = p.valueAt(nodes, &i)
	if e.Value == nil {
		// parser already reported the missing value
		end := n.Span().End
		e.Value = &Node{Type: InvalidType, Span: diag.Span{Start: end, End: end}}
	}
	return e
}

func (p *projector) key(n syntax.Node) Key {
	tok, span := sigToken(n)
	if tok.Type == token.TIdent {
		return Key{Name: tok.Text(), Span: span}
	}
	name, err := unquote(tok.Text())
	if err != nil {
		p.errf(span, "malformed key: %v", err)
		return Key{Name: tok.Text(), Span: span}
	}
	return Key{Name: name, Span: span}
}

func (p *projector) array(n syntax.Node) *Node {
	arr := &Node{Type: ArrayType, Span: sigSpan(n)}
	nodes := n.Nodes()
	i := 0
	for i < len(nodes) {
		v := p.valueAt(nodes, &i)
		if v == nil {
			i++
			continue
		}
		arr.Elems = append(arr.Elems, v)
	}
	return arr
}

func (p *projector) strLit(n syntax.Node) *Node {
	tok, span := sigToken(n)
	s, err := unquote(tok.Text())
	if err != nil {
		p.errf(span, "malformed string: %v", err)
		return &Node{Type: InvalidType, Span: span, Raw: tok.Text()}
	}
	return &Node{Type: StringType, Span: span, Str: s}
}

func (p *projector) intLit(n syntax.Node) *Node {
	tok, span := sigToken(n)
	// base 0 follows the lexical grammar: 0x, 0o and 0b prefixes
	v, err := strconv.ParseInt(tok.Text(), 0, 64)
	if err != nil {
		p.errf(span, "malformed integer %s: %v", tok.Text(), errReason(err))
		return &Node{Type: InvalidType, Span: span, Raw: tok.Text()}
	}
	return &Node{Type: IntegerType, Span: span, Int: v}
}

func (p *projector) floatLit(n syntax.Node) *Node {
	tok, span := sigToken(n)
	v, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil {
		p.errf(span, "malformed float %s: %v", tok.Text(), errReason(err))
		return &Node{Type: InvalidType, Span: span, Raw: tok.Text()}
	}
	return &Node{Type: FloatType, Span: span, Float: v}
}

// unquote converts quoted source text to its value. Raw strings drop their
// backquotes; quoted forms go through escape decoding.
func unquote(text string) (string, error) {
	if len(text) >= 2 && text[0] == '`' {
		return text[1 : len(text)-1], nil
	}
	if len(text) >= 2 {
		return escape.Unquote(mem.S(text[1 : len(text)-1]))
	}
	return "", escape.ErrIncomplete
}

func errReason(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err.Error()
	}
	return err.Error()
}

// annoIdent extracts the identifier and marker span from an annotation
// node.
func annoIdent(n syntax.Node) (string, diag.Span) {
	tok, span := sigToken(n)
	return strings.TrimPrefix(tok.Text(), "@"), span
}

// sigToken returns the node's first significant token and its span.
func sigToken(n syntax.Node) (token.Token, diag.Span) {
	for _, tok := range n.Tokens() {
		if !tok.Type.IsTrivia() {
			return tok, tok.Span()
		}
	}
	return token.Token{}, n.Span()
}

// sigSpan covers the node's significant tokens, excluding any leading or
// trailing trivia attached inside the node.
func sigSpan(n syntax.Node) diag.Span {
	var span diag.Span
	first := true
	for _, tok := range n.Tokens() {
		if tok.Type.IsTrivia() {
			continue
		}
		if first {
			span = tok.Span()
			first = false
		} else {
			span = span.Cover(tok.Span())
		}
	}
	if first {
		return n.Span()
	}
	return span
}

// sigText renders the node's significant tokens, preserving interior trivia
// between the first and last so that error reporting can quote the source.
func sigText(n syntax.Node) string {
	span := sigSpan(n)
	full := n.Span()
	text := n.Text()
	return text[span.Start-full.Start : span.End-full.Start]
}
