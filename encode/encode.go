// Package encode writes a forest's canonical rendering to a writer,
// optionally colorized for terminal output. The line format is identical to
// Forest.String; colors wrap the connector runes and the node values.
package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/forest-format/forest"
)

// Encode writes the plain rendering of f to w.
func Encode[T, B any](f *forest.Forest[T, B], w io.Writer) error {
	return encodeTrees(w, f.Trees(), "", nil)
}

// EncodeColors writes the rendering of f to w with the given color scheme.
func EncodeColors[T, B any](f *forest.Forest[T, B], w io.Writer, colors *Colors) error {
	return encodeTrees(w, f.Trees(), "", colors)
}

// EncodeAuto colorizes when w is a terminal and writes plain text otherwise.
func EncodeAuto[T, B any](f *forest.Forest[T, B], w io.Writer) error {
	if file, ok := w.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		return EncodeColors(f, w, NewColors())
	}
	return Encode(f, w)
}

func encodeTrees[T, B any](w io.Writer, trees []*forest.Tree[T, B], prefix string, colors *Colors) error {
	for i, t := range trees {
		connector, continuation := "├", "│"
		if i == len(trees)-1 {
			connector, continuation = "└", " "
		}
		line := prefix + connector + fmt.Sprint(t.Value())
		if colors != nil {
			conn := colors.of(Colorable{Type: t.Type, Attr: ConnectorColor})
			value := colors.of(Colorable{Type: t.Type, Attr: ValueColor})
			line = conn("%s", prefix+connector) + value("%s", fmt.Sprint(t.Value()))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if t.IsBranch() {
			if err := encodeTrees(w, t.Children, prefix+continuation, colors); err != nil {
				return err
			}
		}
	}
	return nil
}
