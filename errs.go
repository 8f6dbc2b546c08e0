package forest

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroLengthPath reports an empty path given to a path-consuming
	// operation.
	ErrZeroLengthPath = errors.New("zero length path")

	// ErrOutOfBounds reports a path segment with no corresponding sibling.
	ErrOutOfBounds = errors.New("path index out of bounds")

	// ErrExpectedBranch reports a leaf where traversal or an accessor
	// required a branch.
	ErrExpectedBranch = errors.New("expected branch")

	// ErrExpectedLeaf reports a branch where an accessor required a leaf.
	ErrExpectedLeaf = errors.New("expected leaf")
)

// PositionError locates a path resolution failure: Index is the offending
// path segment, Depth the segment's position within the path. It unwraps to
// ErrOutOfBounds or ErrExpectedBranch.
type PositionError struct {
	Err   error
	Index int
	Depth int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v: index %d at depth %d", e.Err, e.Index, e.Depth)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func outOfBounds(index, depth int) error {
	return &PositionError{Err: ErrOutOfBounds, Index: index, Depth: depth}
}

func expectedBranch(index, depth int) error {
	return &PositionError{Err: ErrExpectedBranch, Index: index, Depth: depth}
}
