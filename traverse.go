package forest

import (
	"iter"
	"slices"
)

// All yields every node with its path, depth-first pre-order: a node before
// its children, siblings in index order. The sequence is lazy and restartable;
// each range starts a fresh traversal.
func (f *Forest[T, B]) All() iter.Seq2[*Tree[T, B], Path] {
	return func(yield func(*Tree[T, B], Path) bool) {
		walkTrees(f.trees, nil, yield)
	}
}

func walkTrees[T, B any](trees []*Tree[T, B], prefix Path, yield func(*Tree[T, B], Path) bool) bool {
	for i, t := range trees {
		path := append(slices.Clone(prefix), i)
		if !yield(t, path) {
			return false
		}
		if t.Type == BranchType {
			if !walkTrees(t.Children, path, yield) {
				return false
			}
		}
	}
	return true
}

// Leaves yields every leaf value with its path, in traversal order.
func (f *Forest[T, B]) Leaves() iter.Seq2[T, Path] {
	return func(yield func(T, Path) bool) {
		for node, path := range f.All() {
			if node.Type != LeafType {
				continue
			}
			if !yield(node.Leaf, path) {
				return
			}
		}
	}
}

// LeafValues yields every leaf value in traversal order.
func (f *Forest[T, B]) LeafValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range f.Leaves() {
			if !yield(v) {
				return
			}
		}
	}
}

// Branches yields every branch value with its path, in traversal order.
func (f *Forest[T, B]) Branches() iter.Seq2[B, Path] {
	return func(yield func(B, Path) bool) {
		for node, path := range f.All() {
			if node.Type != BranchType {
				continue
			}
			if !yield(node.Branch, path) {
				return
			}
		}
	}
}

// BranchValues yields every branch value in traversal order.
func (f *Forest[T, B]) BranchValues() iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range f.Branches() {
			if !yield(v) {
				return
			}
		}
	}
}

// FindPathByTree returns the path of the first node, in traversal order,
// satisfying pred. The second return is false when no node matches.
func (f *Forest[T, B]) FindPathByTree(pred func(*Tree[T, B]) bool) (Path, bool) {
	for node, path := range f.All() {
		if pred(node) {
			return path, true
		}
	}
	return nil, false
}

// FindPath returns the path of the first node whose carried value satisfies
// pred.
func (f *Forest[T, B]) FindPath(pred func(any) bool) (Path, bool) {
	return f.FindPathByTree(func(t *Tree[T, B]) bool {
		return pred(t.Value())
	})
}

// Find returns the carried value of the first node satisfying pred.
func (f *Forest[T, B]) Find(pred func(any) bool) (any, bool) {
	for node := range f.All() {
		if pred(node.Value()) {
			return node.Value(), true
		}
	}
	return nil, false
}

// FirstLeaf returns the first leaf value in traversal order.
func (f *Forest[T, B]) FirstLeaf() (T, bool) {
	for v := range f.Leaves() {
		return v, true
	}
	var zero T
	return zero, false
}

// FirstLeafPath returns the path of the first leaf in traversal order.
func (f *Forest[T, B]) FirstLeafPath() (Path, bool) {
	for _, path := range f.Leaves() {
		return path, true
	}
	return nil, false
}

// SiblingTreesAt returns every node sharing path's sibling collection, in
// order, excluding the node at path itself.
func (f *Forest[T, B]) SiblingTreesAt(path Path) ([]*Tree[T, B], error) {
	level, err := f.siblingLevel(path)
	if err != nil {
		return nil, err
	}
	res := make([]*Tree[T, B], 0, len(level))
	for i, node := range level {
		if i == path.last() {
			continue
		}
		res = append(res, node)
	}
	return res, nil
}

// SiblingsAt returns the carried values of the nodes SiblingTreesAt resolves.
func (f *Forest[T, B]) SiblingsAt(path Path) ([]any, error) {
	trees, err := f.SiblingTreesAt(path)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(trees))
	for i, node := range trees {
		res[i] = node.Value()
	}
	return res, nil
}
