package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/forest-format/forest"
)

type Colorable struct {
	Type forest.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ConnectorColor ColorAttr = iota
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range forest.Types() {
		able := Colorable{
			Type: t,
			Attr: ConnectorColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = forest.LeafType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = forest.BranchType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	return colors
}

func (c *Colors) of(able Colorable) func(string, ...any) string {
	if f, ok := c.Map[able]; ok {
		return f
	}
	return c.Default
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
