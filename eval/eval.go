// Package eval runs expression-language predicates against the nodes of a
// forest. A predicate is compiled once and evaluated per node with the
// variables `value` (the carried value), `path` (the node's path string),
// `depth` (the path length) and `leaf` (variant flag) in scope.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/forest-format/forest"
	"github.com/forest-format/forest/debug"
)

// Env is the variable set visible to a running predicate.
type Env map[string]any

// Predicate is a compiled boolean expression.
type Predicate struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a reusable predicate.
func Compile(src string) (*Predicate, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling predicate %q: %w", src, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

func (p *Predicate) String() string {
	return p.src
}

func (p *Predicate) eval(value any, path forest.Path, leaf bool) (bool, error) {
	if debug.Eval() {
		debug.Logf("eval %q at %s\n", p.src, path)
	}
	env := Env{
		"value": value,
		"path":  path.String(),
		"depth": len(path),
		"leaf":  leaf,
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("running predicate %q at %s: %w", p.src, path, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q returned %T, want bool", p.src, res)
	}
	return b, nil
}

// FindPath returns the path of the first node, in pre-order, satisfying p.
// The second return is false when no node matches.
func FindPath[T, B any](f *forest.Forest[T, B], p *Predicate) (forest.Path, bool, error) {
	for node, path := range f.All() {
		ok, err := p.eval(node.Value(), path, node.IsLeaf())
		if err != nil {
			return nil, false, err
		}
		if ok {
			return path, true, nil
		}
	}
	return nil, false, nil
}

// Find returns the carried value of the first node satisfying p.
func Find[T, B any](f *forest.Forest[T, B], p *Predicate) (any, bool, error) {
	path, ok, err := FindPath(f, p)
	if err != nil || !ok {
		return nil, ok, err
	}
	node, err := f.TreeAt(path)
	if err != nil {
		return nil, false, err
	}
	return node.Value(), true, nil
}

// Filter rebuilds f keeping only nodes satisfying p. As with
// Forest.FilterTrees, children are filtered before their branch is evaluated,
// and paths given to p are positions in the original forest.
func Filter[T, B any](f *forest.Forest[T, B], p *Predicate) (*forest.Forest[T, B], error) {
	return filterForest(f, func(t *forest.Tree[T, B], path forest.Path) (bool, error) {
		return p.eval(t.Value(), path, t.IsLeaf())
	})
}

// FilterLeaves rebuilds f keeping only leaves satisfying p. Branches survive
// unless dropEmptyBranches is set and filtering emptied them.
func FilterLeaves[T, B any](f *forest.Forest[T, B], p *Predicate, dropEmptyBranches bool) (*forest.Forest[T, B], error) {
	return filterForest(f, func(t *forest.Tree[T, B], path forest.Path) (bool, error) {
		if t.IsBranch() {
			return !dropEmptyBranches || len(t.Children) > 0, nil
		}
		return p.eval(t.Leaf, path, true)
	})
}

func filterForest[T, B any](f *forest.Forest[T, B], keep func(*forest.Tree[T, B], forest.Path) (bool, error)) (*forest.Forest[T, B], error) {
	trees, err := filterTrees(f.Trees(), nil, keep)
	if err != nil {
		return nil, err
	}
	return forest.New(trees...), nil
}

func filterTrees[T, B any](trees []*forest.Tree[T, B], prefix forest.Path, keep func(*forest.Tree[T, B], forest.Path) (bool, error)) ([]*forest.Tree[T, B], error) {
	out := make([]*forest.Tree[T, B], 0, len(trees))
	for i, t := range trees {
		path := append(prefix.Clone(), i)
		if t.IsBranch() {
			children, err := filterTrees(t.Children, path, keep)
			if err != nil {
				return nil, err
			}
			t = forest.NewBranch[T, B](t.Branch, children...)
		}
		ok, err := keep(t, path)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
