package forest

import (
	"fmt"
	"strings"
)

// String renders the forest one line per node in pre-order. Each line carries
// a box-drawing connector per depth level: `├` before a node with following
// siblings, `└` before the last sibling, and for every ancestor level `│`
// when that ancestor still has following siblings, a space otherwise. Values
// render via fmt.Sprint.
func (f *Forest[T, B]) String() string {
	var sb strings.Builder
	renderTrees(&sb, f.trees, "")
	return sb.String()
}

func renderTrees[T, B any](sb *strings.Builder, trees []*Tree[T, B], prefix string) {
	for i, t := range trees {
		connector, continuation := "├", "│"
		if i == len(trees)-1 {
			connector, continuation = "└", " "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		fmt.Fprint(sb, t.Value())
		sb.WriteByte('\n')
		if t.Type == BranchType {
			renderTrees(sb, t.Children, prefix+continuation)
		}
	}
}
