package forest

import (
	"errors"
	"reflect"
	"testing"
)

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{path: nil, want: "$"},
		{path: Path{0}, want: "$[0]"},
		{path: Path{2, 1, 0}, want: "$[2][1][0]"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", []int(tt.path), got, tt.want)
		}
	}
}

func TestTreeAt(t *testing.T) {
	f := dirForest()
	tests := []struct {
		name string
		path Path
		want any
		err  error
	}{
		{name: "root branch", path: Path{0}, want: "emptyDir"},
		{name: "root leaf", path: Path{1}, want: 5},
		{name: "nested leaf", path: Path{2, 1, 0}, want: 7},
		{name: "nested empty branch", path: Path{2, 1, 1}, want: "emptySubdir"},
		{name: "zero length", path: Path{}, err: ErrZeroLengthPath},
		{name: "out of bounds root", path: Path{3}, err: ErrOutOfBounds},
		{name: "negative index", path: Path{-1}, err: ErrOutOfBounds},
		{name: "out of bounds nested", path: Path{2, 5}, err: ErrOutOfBounds},
		{name: "through a leaf", path: Path{1, 0}, err: ErrExpectedBranch},
		{name: "through a nested leaf", path: Path{2, 0, 0}, err: ErrExpectedBranch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := f.TreeAt(tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if node.Value() != tt.want {
				t.Errorf("value = %v, want %v", node.Value(), tt.want)
			}
		})
	}
}

func TestPositionError(t *testing.T) {
	f := dirForest()
	_, err := f.TreeAt(Path{2, 5})
	var pe *PositionError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PositionError", err)
	}
	if pe.Index != 5 || pe.Depth != 1 {
		t.Errorf("position = (%d, %d), want (5, 1)", pe.Index, pe.Depth)
	}

	_, err = f.TreeAt(Path{1, 0})
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PositionError", err)
	}
	if pe.Index != 1 || pe.Depth != 0 {
		t.Errorf("position = (%d, %d), want (1, 0)", pe.Index, pe.Depth)
	}
}

func TestLeafAndBranchAt(t *testing.T) {
	f := dirForest()

	if v, err := f.LeafAt(Path{2, 1, 0}); err != nil || v != 7 {
		t.Errorf("LeafAt = (%v, %v), want (7, nil)", v, err)
	}
	if _, err := f.LeafAt(Path{0}); !errors.Is(err, ErrExpectedLeaf) {
		t.Errorf("LeafAt on branch: err = %v, want ErrExpectedLeaf", err)
	}
	if _, err := f.LeafTreeAt(Path{2, 1, 1}); !errors.Is(err, ErrExpectedLeaf) {
		t.Errorf("LeafTreeAt on empty branch: err = %v, want ErrExpectedLeaf", err)
	}

	if v, err := f.BranchAt(Path{2, 1}); err != nil || v != "subdir" {
		t.Errorf("BranchAt = (%v, %v), want (subdir, nil)", v, err)
	}
	if _, err := f.BranchAt(Path{1}); !errors.Is(err, ErrExpectedBranch) {
		t.Errorf("BranchAt on leaf: err = %v, want ErrExpectedBranch", err)
	}
	if _, err := f.BranchTreeAt(Path{2, 0}); !errors.Is(err, ErrExpectedBranch) {
		t.Errorf("BranchTreeAt on leaf: err = %v, want ErrExpectedBranch", err)
	}
}

func TestTreesAt(t *testing.T) {
	f := dirForest()
	tests := []struct {
		name   string
		path   Path
		amount int
		want   []any
	}{
		{name: "empty path", path: Path{}, amount: 3, want: nil},
		{name: "run of roots", path: Path{0}, amount: 2, want: []any{"emptyDir", 5}},
		{name: "truncated run", path: Path{1}, amount: 5, want: []any{5, "nonEmptyDir"}},
		{name: "nested run", path: Path{2, 0}, amount: 2, want: []any{6, "subdir"}},
		{name: "start past end", path: Path{2, 2}, amount: 1, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trees, err := f.TreesAt(tt.path, tt.amount)
			if err != nil {
				t.Fatal(err)
			}
			var got []any
			for _, node := range trees {
				got = append(got, node.Value())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("values = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := f.TreesAt(Path{1, 0}, 1); !errors.Is(err, ErrExpectedBranch) {
		t.Errorf("TreesAt through leaf: err = %v, want ErrExpectedBranch", err)
	}
}

func TestPathToValues(t *testing.T) {
	f := dirForest()
	got, err := f.PathToValues(Path{2, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []any{"nonEmptyDir", "subdir", 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
	if _, err := f.PathToValues(Path{}); !errors.Is(err, ErrZeroLengthPath) {
		t.Errorf("err = %v, want ErrZeroLengthPath", err)
	}
}

func TestValuesToPath(t *testing.T) {
	f := dirForest()
	tests := []struct {
		name   string
		values []any
		want   Path
		found  bool
		err    error
	}{
		{
			name:   "nested branch",
			values: []any{"nonEmptyDir", "subdir", "emptySubdir"},
			want:   Path{2, 1, 1},
			found:  true,
		},
		{
			name:   "leaf at end",
			values: []any{"nonEmptyDir", 6},
			want:   Path{2, 0},
			found:  true,
		},
		{
			name:   "root only",
			values: []any{5},
			want:   Path{1},
			found:  true,
		},
		{
			name:   "no match at root",
			values: []any{"missing"},
		},
		{
			name:   "no match at depth",
			values: []any{"nonEmptyDir", "missing"},
		},
		{
			name:   "empty values",
			values: nil,
		},
		{
			name:   "descends into leaf",
			values: []any{"nonEmptyDir", 6, 7},
			err:    ErrExpectedBranch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, found, err := f.ValuesToPath(tt.values)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if !reflect.DeepEqual(path, tt.want) {
				t.Errorf("path = %v, want %v", path, tt.want)
			}
		})
	}
}

func TestValuesToPathFirstMatchWins(t *testing.T) {
	f := New(
		NewBranch[int, string]("dup", NewLeaf[int, string](1)),
		NewBranch[int, string]("dup", NewLeaf[int, string](2)),
	)
	path, found, err := f.ValuesToPath([]any{"dup", 2})
	if err != nil {
		t.Fatal(err)
	}
	// The first "dup" wins even though only the second contains 2.
	if found {
		t.Fatalf("found = true at %v, want not found", path)
	}
	path, found, err = f.ValuesToPath([]any{"dup", 1})
	if err != nil || !found {
		t.Fatalf("(%v, %v, %v), want found", path, found, err)
	}
	if !reflect.DeepEqual(path, Path{0, 0}) {
		t.Errorf("path = %v, want [0 0]", path)
	}
}
