// Package forest provides an immutable multi-tree data structure addressed by
// positional paths. A Forest is an ordered sequence of trees; every tree node
// is either a leaf carrying a value of type T or a branch carrying a value of
// type B plus an ordered list of children. All operations are pure: they read
// the receiver and return a new Forest, so unmodified subtrees are shared by
// reference between the old and new value.
package forest

import "slices"

// Tree is a node in a forest. The Type field discriminates the two variants:
// a leaf carries Leaf and nothing else, a branch carries Branch and Children.
// Children is non-nil for every branch, so a branch with zero children is
// distinct from a leaf.
type Tree[T, B any] struct {
	Type     Type
	Leaf     T
	Branch   B
	Children []*Tree[T, B]
}

// NewLeaf returns a leaf node carrying v.
func NewLeaf[T, B any](v T) *Tree[T, B] {
	return &Tree[T, B]{Type: LeafType, Leaf: v}
}

// NewBranch returns a branch node carrying v and the given children, in order.
func NewBranch[T, B any](v B, children ...*Tree[T, B]) *Tree[T, B] {
	if children == nil {
		children = []*Tree[T, B]{}
	}
	return &Tree[T, B]{Type: BranchType, Branch: v, Children: children}
}

func (t *Tree[T, B]) IsLeaf() bool {
	return t.Type == LeafType
}

func (t *Tree[T, B]) IsBranch() bool {
	return t.Type == BranchType
}

// Value returns the carried value regardless of variant.
func (t *Tree[T, B]) Value() any {
	if t.Type == LeafType {
		return t.Leaf
	}
	return t.Branch
}

// Clone returns a deep copy of the node. Carried values are copied by
// assignment; only the tree structure is duplicated.
func (t *Tree[T, B]) Clone() *Tree[T, B] {
	res := &Tree[T, B]{}
	return t.cloneTo(res)
}

func (t *Tree[T, B]) cloneTo(dst *Tree[T, B]) *Tree[T, B] {
	dst.Type = t.Type
	dst.Leaf = t.Leaf
	dst.Branch = t.Branch
	if t.Children != nil {
		dst.Children = make([]*Tree[T, B], len(t.Children))
		for i, c := range t.Children {
			dst.Children[i] = c.Clone()
		}
	}
	return dst
}

// withChildren returns a copy of the branch node with children substituted.
// The original node is never mutated.
func (t *Tree[T, B]) withChildren(children []*Tree[T, B]) *Tree[T, B] {
	return &Tree[T, B]{Type: BranchType, Branch: t.Branch, Children: children}
}

// Forest is an ordered, immutable sequence of root-level trees. Every mutator
// returns a new Forest; the receiver is left untouched.
type Forest[T, B any] struct {
	trees []*Tree[T, B]
}

// New builds a Forest from the given root trees. No deep validation is
// performed; the caller keeps ownership of nothing (the slice is copied).
func New[T, B any](trees ...*Tree[T, B]) *Forest[T, B] {
	return &Forest[T, B]{trees: slices.Clone(trees)}
}

// Trees returns a copy of the root-level tree slice.
func (f *Forest[T, B]) Trees() []*Tree[T, B] {
	return slices.Clone(f.trees)
}

// Len returns the number of root-level trees.
func (f *Forest[T, B]) Len() int {
	return len(f.trees)
}
