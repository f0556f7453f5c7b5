package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Diff  bool
	Merge bool
	Match bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JV_DEBUG_PARSE")
	d.Patch = boolEnv("JV_DEBUG_PATCH")
	d.Diff = boolEnv("JV_DEBUG_DIFF")
	d.Merge = boolEnv("JV_DEBUG_MERGE")
	d.Match = boolEnv("JV_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}
func Match() bool {
	return d.Match
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
