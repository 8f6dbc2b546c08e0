package eval

import (
	"reflect"
	"testing"

	"github.com/forest-format/forest"
)

func dirForest() *forest.Forest[int, string] {
	return forest.New(
		forest.NewBranch[int, string]("emptyDir"),
		forest.NewLeaf[int, string](5),
		forest.NewBranch[int, string]("nonEmptyDir",
			forest.NewLeaf[int, string](6),
			forest.NewBranch[int, string]("subdir",
				forest.NewLeaf[int, string](7),
				forest.NewBranch[int, string]("emptySubdir"),
			),
		),
	)
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("value >"); err == nil {
		t.Error("expected compile error")
	}
}

func TestFindPath(t *testing.T) {
	f := dirForest()
	tests := []struct {
		src   string
		want  forest.Path
		found bool
	}{
		{src: `leaf && value > 5`, want: forest.Path{2, 0}, found: true},
		{src: `value == "subdir"`, want: forest.Path{2, 1}, found: true},
		{src: `depth == 3`, want: forest.Path{2, 1, 0}, found: true},
		{src: `path == "$[2][1][1]"`, want: forest.Path{2, 1, 1}, found: true},
		{src: `value == "missing"`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			path, found, err := FindPath(f, p)
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

func TestFind(t *testing.T) {
	f := dirForest()
	p, err := Compile(`!leaf && depth > 1`)
	if err != nil {
		t.Fatal(err)
	}
	v, found, err := Find(f, p)
	if err != nil {
		t.Fatal(err)
	}
	if !found || v != "subdir" {
		t.Errorf("Find = (%v, %v), want (subdir, true)", v, found)
	}
}

func TestFilter(t *testing.T) {
	f := dirForest()
	p, err := Compile(`value != 6`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Filter(f, p)
	if err != nil {
		t.Fatal(err)
	}
	want := "├emptyDir\n├5\n└nonEmptyDir\n └subdir\n  ├7\n  └emptySubdir\n"
	if got.String() != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestFilterLeaves(t *testing.T) {
	f := dirForest()
	p, err := Compile(`value == 7`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := FilterLeaves(f, p, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "└nonEmptyDir\n └subdir\n  └7\n"
	if got.String() != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestNonBoolPredicate(t *testing.T) {
	f := dirForest()
	p, err := Compile(`depth`)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := FindPath(f, p); err == nil {
		t.Error("expected error for non-bool predicate result")
	}
}
