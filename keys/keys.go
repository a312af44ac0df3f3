// Package keys implements dotted-path addressing of DOM nodes: an ordered
// sequence of object-key and array-index segments, with a textual form
// that round-trips through [Parse] and [Keys.String].
//
// The textual form separates segments with '.'; an all-digit segment is an
// array index, and key names that would be ambiguous or contain reserved
// characters are written single-quoted with backslash escapes, e.g.
// profile.'weird.key'.servers.0.host.
package keys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nota-format/nota/dom"
)

// Key is one path segment: an object key name or an array index.
type Key struct {
	Name    string
	Index   int
	IsIndex bool
}

// Name returns a key-name segment.
func Name(s string) Key { return Key{Name: s} }

// Index returns an array-index segment. It panics when i is negative:
// the textual form has no negative indices, so such a segment could
// never round-trip through [Parse].
func Index(i int) Key {
	if i < 0 {
		panic("keys: negative index")
	}
	return Key{Index: i, IsIndex: true}
}

func (k Key) String() string {
	if k.IsIndex {
		return strconv.Itoa(k.Index)
	}
	if bareOK(k.Name) {
		return k.Name
	}
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(k.Name); i++ {
		switch c := k.Name[i]; c {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// bareOK reports whether a name can be written without quotes: non-empty,
// free of separators and quotes, and not mistakable for an index.
func bareOK(s string) bool {
	if s == "" || allDigits(s) {
		return false
	}
	return !strings.ContainsAny(s, ".'\\")
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Keys is an addressing path. The empty path denotes the document root.
type Keys []Key

func (ks Keys) String() string {
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = k.String()
	}
	return strings.Join(parts, ".")
}

// Equal reports structural equality.
func (ks Keys) Equal(o Keys) bool {
	if len(ks) != len(o) {
		return false
	}
	for i := range ks {
		if ks[i] != o[i] {
			return false
		}
	}
	return true
}

// Parse converts the textual form back to Keys. It is the inverse of
// [Keys.String] for any Keys value. Malformed text fails with an error
// wrapping [ErrQuery]; no partial result is returned.
func Parse(s string) (Keys, error) {
	if s == "" {
		return Keys{}, nil
	}
	var out Keys
	for len(s) > 0 {
		k, rest, err := parseSegment(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
		s = rest
	}
	return out, nil
}

func parseSegment(s string) (Key, string, error) {
	if s[0] == '\'' {
		return parseQuoted(s)
	}
	end := strings.IndexByte(s, '.')
	seg, rest := s, ""
	if end >= 0 {
		seg, rest = s[:end], s[end+1:]
		if rest == "" {
			return Key{}, "", fmt.Errorf("%w: trailing '.'", ErrQuery)
		}
	}
	if seg == "" {
		return Key{}, "", fmt.Errorf("%w: empty segment", ErrQuery)
	}
	if strings.ContainsAny(seg, "'\\") {
		return Key{}, "", fmt.Errorf("%w: segment %q needs quoting", ErrQuery, seg)
	}
	if allDigits(seg) {
		i, err := strconv.ParseUint(seg, 10, 31)
		if err != nil {
			return Key{}, "", fmt.Errorf("%w: index %q: %v", ErrQuery, seg, err)
		}
		return Index(int(i)), rest, nil
	}
	return Name(seg), rest, nil
}

func parseQuoted(s string) (Key, string, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		switch c := s[i]; c {
		case '\\':
			if i+1 >= len(s) {
				return Key{}, "", fmt.Errorf("%w: trailing backslash", ErrQuery)
			}
			switch s[i+1] {
			case '\'', '\\':
				b.WriteByte(s[i+1])
			default:
				return Key{}, "", fmt.Errorf("%w: invalid escape \\%c", ErrQuery, s[i+1])
			}
			i += 2
		case '\'':
			rest := s[i+1:]
			if rest == "" {
				return Name(b.String()), "", nil
			}
			if rest[0] != '.' {
				return Key{}, "", fmt.Errorf("%w: expected '.' after quoted segment", ErrQuery)
			}
			if rest[1:] == "" {
				return Key{}, "", fmt.Errorf("%w: trailing '.'", ErrQuery)
			}
			return Name(b.String()), rest[1:], nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return Key{}, "", fmt.Errorf("%w: unterminated quoted segment", ErrQuery)
}

// Resolve walks root segment by segment. It returns nil, not an error, when
// a segment addresses a missing key, an out-of-range index, or a
// non-container: absence is an ordinary outcome for speculative lookups.
func (ks Keys) Resolve(root *dom.Node) *dom.Node {
	n := root
	for _, k := range ks {
		if n == nil {
			return nil
		}
		if k.IsIndex {
			n = n.Index(k.Index)
		} else {
			n = n.Get(k.Name)
		}
	}
	return n
}

// Ensure walks root, synthesizing missing containers and entries along the
// path: name segments become object entries, index segments extend arrays
// with nulls as needed. It fails when an existing node of the wrong type
// blocks the path.
func (ks Keys) Ensure(root *dom.Node) (*dom.Node, error) {
	n := root
	for _, k := range ks {
		if k.IsIndex {
			if n.Type == dom.NullType {
				n.Type = dom.ArrayType
			}
			if n.Type != dom.ArrayType {
				return nil, fmt.Errorf("%w: cannot index %s with %d", ErrQuery, n.Type, k.Index)
			}
			for len(n.Elems) <= k.Index {
				n.Elems = append(n.Elems, dom.Null())
			}
			n = n.Elems[k.Index]
			continue
		}
		if n.Type == dom.NullType {
			n.Type = dom.ObjectType
		}
		if n.Type != dom.ObjectType {
			return nil, fmt.Errorf("%w: cannot key %s with %q", ErrQuery, n.Type, k.Name)
		}
		next := n.Get(k.Name)
		if next == nil {
			next = dom.Null()
			n.Entries = append(n.Entries, &dom.Entry{Key: dom.Key{Name: k.Name}, Value: next})
		}
		n = next
	}
	return n, nil
}
