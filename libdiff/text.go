package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff renders a line diff of the encodings of from and to. Lines
// only in from are prefixed with "-", lines only in to with "+" and shared
// lines with " ". With colored, removed and added lines are colored red
// and green.
func TextDiff(from, to *ir.Node, colored bool, opts ...encode.EncodeOption) (string, error) {
	opts = append([]encode.EncodeOption{encode.EncodeIndent(2)}, opts...)
	a, err := encodeString(from, opts)
	if err != nil {
		return "", err
	}
	b, err := encodeString(to, opts)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	res := &strings.Builder{}
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", color.New(color.FgRed).Sprint
		case diffpatch.DiffInsert:
			prefix, paint = "+", color.New(color.FgGreen).Sprint
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			ln = prefix + ln
			if colored && d.Type != diffpatch.DiffEqual {
				ln = paint(strings.TrimSuffix(ln, "\n")) + "\n"
			}
			res.WriteString(ln)
		}
	}
	return res.String(), nil
}

func encodeString(n *ir.Node, opts []encode.EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := encode.Encode(n, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
