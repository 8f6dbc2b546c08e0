package forest

import (
	"bytes"
	"reflect"
	"slices"
	"strconv"
)

// Path locates a node from the forest roots downward: path [i0, i1, ..., ik]
// selects the i0-th root tree, then its i1-th child, and so on. Paths are
// positional, not stable identifiers; any edit that shifts sibling order
// invalidates paths at and below the edited level.
type Path []int

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, i := range p {
		buf.WriteByte('[')
		buf.WriteString(strconv.Itoa(i))
		buf.WriteByte(']')
	}
	return buf.String()
}

func (p Path) Clone() Path {
	return slices.Clone(p)
}

func (p Path) last() int {
	return p[len(p)-1]
}

// treesAlong resolves path to the full ordered chain of visited nodes. All
// segments except the last must resolve through branches.
func (f *Forest[T, B]) treesAlong(path Path) ([]*Tree[T, B], error) {
	if len(path) == 0 {
		return nil, ErrZeroLengthPath
	}
	res := make([]*Tree[T, B], 0, len(path))
	level := f.trees
	for depth, idx := range path {
		if idx < 0 || idx >= len(level) {
			return nil, outOfBounds(idx, depth)
		}
		node := level[idx]
		res = append(res, node)
		if depth < len(path)-1 {
			if node.Type != BranchType {
				return nil, expectedBranch(idx, depth)
			}
			level = node.Children
		}
	}
	return res, nil
}

// siblingLevel resolves the sibling collection containing path's target: the
// root slice for a length-1 path, otherwise the children of the branch the
// leading segments resolve to.
func (f *Forest[T, B]) siblingLevel(path Path) ([]*Tree[T, B], error) {
	if len(path) == 0 {
		return nil, ErrZeroLengthPath
	}
	if len(path) == 1 {
		return f.trees, nil
	}
	chain, err := f.treesAlong(path[:len(path)-1])
	if err != nil {
		return nil, err
	}
	parent := chain[len(chain)-1]
	if parent.Type != BranchType {
		return nil, expectedBranch(path[len(path)-2], len(path)-2)
	}
	return parent.Children, nil
}

// TreeAt returns the node at path.
func (f *Forest[T, B]) TreeAt(path Path) (*Tree[T, B], error) {
	chain, err := f.treesAlong(path)
	if err != nil {
		return nil, err
	}
	return chain[len(chain)-1], nil
}

// LeafTreeAt returns the node at path, which must be a leaf.
func (f *Forest[T, B]) LeafTreeAt(path Path) (*Tree[T, B], error) {
	node, err := f.TreeAt(path)
	if err != nil {
		return nil, err
	}
	if node.Type != LeafType {
		return nil, ErrExpectedLeaf
	}
	return node, nil
}

// LeafAt returns the leaf value at path.
func (f *Forest[T, B]) LeafAt(path Path) (T, error) {
	node, err := f.LeafTreeAt(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.Leaf, nil
}

// BranchTreeAt returns the node at path, which must be a branch.
func (f *Forest[T, B]) BranchTreeAt(path Path) (*Tree[T, B], error) {
	node, err := f.TreeAt(path)
	if err != nil {
		return nil, err
	}
	if node.Type != BranchType {
		return nil, ErrExpectedBranch
	}
	return node, nil
}

// BranchAt returns the branch value at path.
func (f *Forest[T, B]) BranchAt(path Path) (B, error) {
	node, err := f.BranchTreeAt(path)
	if err != nil {
		var zero B
		return zero, err
	}
	return node.Branch, nil
}

// TreesAt returns up to amount contiguous siblings starting at path's final
// index. The run is truncated at the end of the sibling collection; an empty
// path yields an empty run.
func (f *Forest[T, B]) TreesAt(path Path, amount int) ([]*Tree[T, B], error) {
	if len(path) == 0 {
		return nil, nil
	}
	level, err := f.siblingLevel(path)
	if err != nil {
		return nil, err
	}
	start := path.last()
	if start < 0 {
		return nil, outOfBounds(start, len(path)-1)
	}
	if start >= len(level) {
		return nil, nil
	}
	end := min(start+amount, len(level))
	return slices.Clone(level[start:end]), nil
}

// PathToValues returns the carried value of every node along path.
func (f *Forest[T, B]) PathToValues(path Path) ([]any, error) {
	chain, err := f.treesAlong(path)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(chain))
	for i, node := range chain {
		res[i] = node.Value()
	}
	return res, nil
}

// ValuesToPath resolves a value sequence to an index path, matching each
// value against the children at its depth in order and descending into the
// first match. The second return is false when some value has no match at its
// level. A value matching a leaf before the sequence is exhausted is an
// ErrExpectedBranch error.
func (f *Forest[T, B]) ValuesToPath(values []any) (Path, bool, error) {
	path := make(Path, 0, len(values))
	level := f.trees
	for depth, v := range values {
		idx := -1
		for i, node := range level {
			if reflect.DeepEqual(node.Value(), v) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, false, nil
		}
		path = append(path, idx)
		if depth < len(values)-1 {
			node := level[idx]
			if node.Type != BranchType {
				return nil, false, expectedBranch(idx, depth)
			}
			level = node.Children
		}
	}
	if len(path) == 0 {
		return nil, false, nil
	}
	return path, true, nil
}
