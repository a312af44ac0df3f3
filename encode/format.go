package encode

import "fmt"

// Format selects the output syntax of [Encode].
type Format int

const (
	NotaFormat Format = iota
	JSONFormat
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case NotaFormat:
		return "nota"
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return "<unknown format>"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "nota", "n":
		return NotaFormat, nil
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}
