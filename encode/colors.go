package encode

import (
	"github.com/fatih/color"

	"github.com/nota-format/nota/dom"
)

// ColorAttr picks which syntactic role a color applies to.
type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	AnnoColor
	SepColor
)

// Colorable pairs a value type with a syntactic role.
type Colorable struct {
	Type dom.Type
	Attr ColorAttr
}

// Colors maps syntactic roles to sprintf-style colorizers for nota-format
// output.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range dom.Types() {
		able := Colorable{Type: t, Attr: AnnoColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = dom.IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = dom.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = dom.StringType
	colors.Map[able] = color.GreenString
	able.Type = dom.BoolType
	colors.Map[able] = color.MagentaString
	able.Type = dom.NullType
	colors.Map[able] = color.HiBlackString
	able.Type = dom.InvalidType
	colors.Map[able] = color.RedString
	return colors
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}

func (c *Colors) paint(t dom.Type, attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
