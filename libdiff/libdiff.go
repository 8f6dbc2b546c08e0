// Package libdiff renders line-oriented diffs between the canonical string
// renderings of two forests. The output marks inserted lines with "+",
// deleted lines with "-" and keeps common lines indented, which makes failed
// snapshot comparisons readable.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/forest-format/forest"
	"github.com/forest-format/forest/debug"
)

// Diffs returns the line-mode diff between the renderings of from and to.
func Diffs[T, B any](from, to *forest.Forest[T, B]) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from.String(), to.String())
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	if debug.Diff() {
		debug.Logf("libdiff: %d diff runs\n", len(diffs))
	}
	return diffs
}

// Changed reports whether from and to render differently.
func Changed[T, B any](from, to *forest.Forest[T, B]) bool {
	for _, d := range Diffs(from, to) {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Render formats the diff between from and to, one marked line per rendered
// node line. It returns the empty string when the renderings are equal.
func Render[T, B any](from, to *forest.Forest[T, B]) string {
	diffs := Diffs(from, to)
	changed := false
	var sb strings.Builder
	for _, d := range diffs {
		mark := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			mark = "+ "
			changed = true
		case diffpatch.DiffDelete:
			mark = "- "
			changed = true
		}
		for line := range strings.Lines(d.Text) {
			sb.WriteString(mark)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}
	if !changed {
		return ""
	}
	return sb.String()
}
