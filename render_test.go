package forest

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	f := dirForest()
	want := strings.Join([]string{
		"├emptyDir",
		"├5",
		"└nonEmptyDir",
		" ├6",
		" └subdir",
		"  ├7",
		"  └emptySubdir",
		"",
	}, "\n")
	if got := f.String(); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestStringEmpty(t *testing.T) {
	f := New[int, string]()
	if got := f.String(); got != "" {
		t.Errorf("empty forest renders %q", got)
	}
}

func TestStringSingleRoot(t *testing.T) {
	f := New(NewLeaf[int, string](1))
	if got := f.String(); got != "└1\n" {
		t.Errorf("got %q, want %q", got, "└1\n")
	}
}

func TestStringDeepNesting(t *testing.T) {
	f := New(
		NewBranch[int, string]("a",
			NewBranch[int, string]("b",
				NewLeaf[int, string](1),
			),
			NewLeaf[int, string](2),
		),
		NewLeaf[int, string](3),
	)
	want := strings.Join([]string{
		"├a",
		"│├b",
		"││└1",
		"│└2",
		"└3",
		"",
	}, "\n")
	if got := f.String(); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}
