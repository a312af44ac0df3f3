package encode

type EncodeOption func(*encState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// Annotated keeps annotations in the output: native @name markers in nota
// format, wrapper objects in json and yaml.
func Annotated(v bool) EncodeOption {
	return func(es *encState) { es.annotated = v }
}

// Indent sets the indent width in spaces. Values < 1 are ignored.
func Indent(n int) EncodeOption {
	return func(es *encState) {
		if n >= 1 {
			es.indent = n
		}
	}
}

// Compact emits a single line with no indentation. It has no effect on
// yaml output.
func Compact(v bool) EncodeOption {
	return func(es *encState) { es.compact = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
