package forest

import (
	"slices"

	"github.com/forest-format/forest/debug"
)

// Comparator orders two sibling nodes. The result follows the cmp convention:
// negative when a sorts before b, zero when equal, positive otherwise.
type Comparator[T, B any] func(a, b *Tree[T, B]) int

// spliceAt rebuilds the ancestor chain from the roots down to the sibling
// collection containing path's target, substituting that collection with the
// result of edit. Untouched subtrees are shared with the receiver. The edit
// callback must not mutate the slice it is given.
func (f *Forest[T, B]) spliceAt(path Path, edit func(level []*Tree[T, B], depth int) ([]*Tree[T, B], error)) (*Forest[T, B], error) {
	if len(path) == 0 {
		return nil, ErrZeroLengthPath
	}
	trees, err := spliceTrees(f.trees, path, 0, edit)
	if err != nil {
		return nil, err
	}
	return &Forest[T, B]{trees: trees}, nil
}

func spliceTrees[T, B any](trees []*Tree[T, B], path Path, depth int, edit func([]*Tree[T, B], int) ([]*Tree[T, B], error)) ([]*Tree[T, B], error) {
	if len(path) == 1 {
		return edit(trees, depth)
	}
	idx := path[0]
	if idx < 0 || idx >= len(trees) {
		return nil, outOfBounds(idx, depth)
	}
	node := trees[idx]
	if node.Type != BranchType {
		return nil, expectedBranch(idx, depth)
	}
	children, err := spliceTrees(node.Children, path[1:], depth+1, edit)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(trees)
	out[idx] = node.withChildren(children)
	return out, nil
}

// InsertTreesAt inserts newTrees immediately before the node at path's final
// index; that node and everything after it shift to higher indices. The final
// index may equal the sibling collection's length, appending. A non-nil cmp
// re-sorts the receiving sibling collection, and only that collection, after
// insertion.
func (f *Forest[T, B]) InsertTreesAt(path Path, newTrees []*Tree[T, B], cmp Comparator[T, B]) (*Forest[T, B], error) {
	if debug.Edit() {
		debug.Logf("insert %d trees at %s\n", len(newTrees), path)
	}
	return f.spliceAt(path, func(level []*Tree[T, B], depth int) ([]*Tree[T, B], error) {
		idx := path.last()
		if idx < 0 || idx > len(level) {
			return nil, outOfBounds(idx, depth)
		}
		out := make([]*Tree[T, B], 0, len(level)+len(newTrees))
		out = append(out, level[:idx]...)
		out = append(out, newTrees...)
		out = append(out, level[idx:]...)
		if cmp != nil {
			slices.SortStableFunc(out, cmp)
		}
		return out, nil
	})
}

// InsertTreeAt inserts a single node before path's final index.
func (f *Forest[T, B]) InsertTreeAt(path Path, tree *Tree[T, B], cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.InsertTreesAt(path, []*Tree[T, B]{tree}, cmp)
}

// InsertLeafAt inserts a new leaf carrying v before path's final index.
func (f *Forest[T, B]) InsertLeafAt(path Path, v T, cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.InsertTreeAt(path, NewLeaf[T, B](v), cmp)
}

// InsertBranchAt inserts a new empty branch carrying v before path's final
// index.
func (f *Forest[T, B]) InsertBranchAt(path Path, v B, cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.InsertTreeAt(path, NewBranch[T, B](v), cmp)
}

// DeleteAt removes the node at path, with its entire subtree.
func (f *Forest[T, B]) DeleteAt(path Path) (*Forest[T, B], error) {
	return f.DeleteSeveralAt(path, 1)
}

// DeleteSeveralAt removes up to amount contiguous nodes starting at path's
// final index; later siblings shift down. The run truncates at the end of the
// sibling collection.
func (f *Forest[T, B]) DeleteSeveralAt(path Path, amount int) (*Forest[T, B], error) {
	if debug.Edit() {
		debug.Logf("delete %d trees at %s\n", amount, path)
	}
	if amount < 0 {
		amount = 0
	}
	return f.spliceAt(path, func(level []*Tree[T, B], depth int) ([]*Tree[T, B], error) {
		idx := path.last()
		if idx < 0 || idx >= len(level) {
			return nil, outOfBounds(idx, depth)
		}
		end := min(idx+amount, len(level))
		out := make([]*Tree[T, B], 0, len(level)-(end-idx))
		out = append(out, level[:idx]...)
		out = append(out, level[end:]...)
		return out, nil
	})
}

// Move relocates the node at from so that it ends up before the node that to
// identifies once the removal has been accounted for.
func (f *Forest[T, B]) Move(from, to Path) (*Forest[T, B], error) {
	return f.MoveSeveral(from, to, 1)
}

// MoveSeveral relocates amount contiguous nodes starting at from. The target
// path is interpreted in the post-deletion numbering: at the first shared
// depth where from's index is strictly less than to's, to's index drops by
// amount and no deeper level is adjusted.
func (f *Forest[T, B]) MoveSeveral(from, to Path, amount int) (*Forest[T, B], error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, ErrZeroLengthPath
	}
	moved, err := f.TreesAt(from, amount)
	if err != nil {
		return nil, err
	}
	target := adjustMoveTarget(from, to, amount)
	if debug.Edit() {
		debug.Logf("move %d trees %s -> %s (adjusted %s)\n", amount, from, to, target)
	}
	deleted, err := f.DeleteSeveralAt(from, amount)
	if err != nil {
		return nil, err
	}
	return deleted.InsertTreesAt(target, moved, nil)
}

func adjustMoveTarget(from, to Path, amount int) Path {
	target := to.Clone()
	for i := range min(len(from), len(to)) {
		if from[i] < to[i] {
			target[i] -= amount
			break
		}
	}
	return target
}

// UpdateTreeAt replaces the node at path with update's result. A non-nil cmp
// re-sorts the node's sibling collection after replacement.
func (f *Forest[T, B]) UpdateTreeAt(path Path, update func(*Tree[T, B]) *Tree[T, B], cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.updateAt(path, cmp, func(node *Tree[T, B]) (*Tree[T, B], error) {
		return update(node), nil
	})
}

// UpdateLeafAt replaces the leaf value at path with update's result. The node
// at path must be a leaf.
func (f *Forest[T, B]) UpdateLeafAt(path Path, update func(T) T, cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.updateAt(path, cmp, func(node *Tree[T, B]) (*Tree[T, B], error) {
		if node.Type != LeafType {
			return nil, ErrExpectedLeaf
		}
		return NewLeaf[T, B](update(node.Leaf)), nil
	})
}

// UpdateBranchAt replaces the branch value at path with update's result,
// preserving the existing children. The node at path must be a branch.
func (f *Forest[T, B]) UpdateBranchAt(path Path, update func(B) B, cmp Comparator[T, B]) (*Forest[T, B], error) {
	return f.updateAt(path, cmp, func(node *Tree[T, B]) (*Tree[T, B], error) {
		if node.Type != BranchType {
			return nil, ErrExpectedBranch
		}
		return &Tree[T, B]{Type: BranchType, Branch: update(node.Branch), Children: node.Children}, nil
	})
}

func (f *Forest[T, B]) updateAt(path Path, cmp Comparator[T, B], replace func(*Tree[T, B]) (*Tree[T, B], error)) (*Forest[T, B], error) {
	if debug.Edit() {
		debug.Logf("update tree at %s\n", path)
	}
	return f.spliceAt(path, func(level []*Tree[T, B], depth int) ([]*Tree[T, B], error) {
		idx := path.last()
		if idx < 0 || idx >= len(level) {
			return nil, outOfBounds(idx, depth)
		}
		next, err := replace(level[idx])
		if err != nil {
			return nil, err
		}
		out := slices.Clone(level)
		out[idx] = next
		if cmp != nil {
			slices.SortStableFunc(out, cmp)
		}
		return out, nil
	})
}
