package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return parse.ParseReader(r, opts...)
}

// getish reads arg as a document, or parses it directly when asString is
// set.
func getish(asString bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if asString {
		return parse.ParseString(arg, opts...)
	}
	return getObjFile(cc, arg, opts...)
}

// eachDoc calls f with the document in each of files, or with standard
// input when files is empty. Documents after the first are preceded by a
// separator line on w.
func eachDoc(cc *cli.Context, w io.Writer, files []string, opts []parse.ParseOption, f func(string, *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := getObjFile(cc, file, opts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
