package syntax

import "fmt"

// Kind classifies syntax tree nodes.
type Kind int

const (
	KindDocument Kind = iota
	KindObject
	KindEntry
	KindKey
	KindArray
	KindString
	KindInteger
	KindFloat
	KindBool
	KindNull
	KindAnnotation
	KindError
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindDocument:   "Document",
		KindObject:     "Object",
		KindEntry:      "Entry",
		KindKey:        "Key",
		KindArray:      "Array",
		KindString:     "String",
		KindInteger:    "Integer",
		KindFloat:      "Float",
		KindBool:       "Bool",
		KindNull:       "Null",
		KindAnnotation: "Annotation",
		KindError:      "Error",
	}[k]
	if !ok {
		return "<unknown kind>"
	}
	return s
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, kk := range Kinds() {
		if kk.String() == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		KindDocument,
		KindObject,
		KindEntry,
		KindKey,
		KindArray,
		KindString,
		KindInteger,
		KindFloat,
		KindBool,
		KindNull,
		KindAnnotation,
		KindError,
	}
}

// IsScalar reports whether nodes of this kind wrap a single literal token.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInteger, KindFloat, KindBool, KindNull:
		return true
	}
	return false
}
