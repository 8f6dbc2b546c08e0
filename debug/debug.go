// Package debug provides env-gated tracing for forest operations. Flags are
// read once at init from FOREST_DEBUG_* variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Edit bool
	Eval bool
	Diff bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("FOREST_DEBUG_EDIT")
	d.Eval = boolEnv("FOREST_DEBUG_EVAL")
	d.Diff = boolEnv("FOREST_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
