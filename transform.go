package forest

import "slices"

// FilterTrees rebuilds the forest keeping only nodes satisfying pred. Each
// branch's children are filtered first, so pred sees branches with their
// already-pruned children. Dropping a branch drops its whole subtree.
func (f *Forest[T, B]) FilterTrees(pred func(*Tree[T, B]) bool) *Forest[T, B] {
	return &Forest[T, B]{trees: filterTrees(f.trees, pred)}
}

func filterTrees[T, B any](trees []*Tree[T, B], pred func(*Tree[T, B]) bool) []*Tree[T, B] {
	out := make([]*Tree[T, B], 0, len(trees))
	for _, t := range trees {
		if t.Type == BranchType {
			t = t.withChildren(filterTrees(t.Children, pred))
		}
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// Filter keeps only nodes whose carried value satisfies pred.
func (f *Forest[T, B]) Filter(pred func(any) bool) *Forest[T, B] {
	return f.FilterTrees(func(t *Tree[T, B]) bool {
		return pred(t.Value())
	})
}

// FilterLeaves keeps only leaves satisfying pred. Branches are always kept,
// unless dropEmptyBranches is set and the branch has no children left after
// filtering.
func (f *Forest[T, B]) FilterLeaves(pred func(T) bool, dropEmptyBranches bool) *Forest[T, B] {
	return f.FilterTrees(func(t *Tree[T, B]) bool {
		if t.Type == LeafType {
			return pred(t.Leaf)
		}
		return !dropEmptyBranches || len(t.Children) > 0
	})
}

// Map rebuilds every node, replacing leaf values via mapLeaf and branch
// values via mapBranch. A nil mapBranch keeps branch values as they are. The
// path passed to each mapper is the node's path in the receiver.
func (f *Forest[T, B]) Map(mapLeaf func(T, Path) T, mapBranch func(B, Path) B) *Forest[T, B] {
	if mapBranch == nil {
		mapBranch = func(v B, _ Path) B { return v }
	}
	return MapForest(f, mapLeaf, mapBranch)
}

// MapForest rebuilds every node of f, mapping leaf values to T2 and branch
// values to B2. It is the type-changing form of Forest.Map.
func MapForest[T, B, T2, B2 any](f *Forest[T, B], mapLeaf func(T, Path) T2, mapBranch func(B, Path) B2) *Forest[T2, B2] {
	return &Forest[T2, B2]{trees: mapTrees(f.trees, nil, mapLeaf, mapBranch)}
}

func mapTrees[T, B, T2, B2 any](trees []*Tree[T, B], prefix Path, mapLeaf func(T, Path) T2, mapBranch func(B, Path) B2) []*Tree[T2, B2] {
	out := make([]*Tree[T2, B2], len(trees))
	for i, t := range trees {
		path := append(slices.Clone(prefix), i)
		if t.Type == LeafType {
			out[i] = NewLeaf[T2, B2](mapLeaf(t.Leaf, path))
			continue
		}
		out[i] = &Tree[T2, B2]{
			Type:     BranchType,
			Branch:   mapBranch(t.Branch, path),
			Children: mapTrees(t.Children, path, mapLeaf, mapBranch),
		}
	}
	return out
}

// Sort reorders every sibling collection at every depth with cmp. The sort is
// stable within each collection.
func (f *Forest[T, B]) Sort(cmp Comparator[T, B]) *Forest[T, B] {
	return &Forest[T, B]{trees: sortTrees(f.trees, cmp)}
}

func sortTrees[T, B any](trees []*Tree[T, B], cmp Comparator[T, B]) []*Tree[T, B] {
	out := slices.Clone(trees)
	for i, t := range out {
		if t.Type == BranchType {
			out[i] = t.withChildren(sortTrees(t.Children, cmp))
		}
	}
	slices.SortStableFunc(out, cmp)
	return out
}
