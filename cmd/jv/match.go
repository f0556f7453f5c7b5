package main

import (
	"fmt"

	"github.com/signadot/jsonir"
	"github.com/signadot/jsonir/encode"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	pattern, err := getish(cfg.String, cc, args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !jsonir.Match(doc, pattern) {
			theLog.Debug("no match", "file", file)
			continue
		}
		if n > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		n++
		out := doc
		if cfg.Trim {
			out = jsonir.Trim(pattern, doc)
		}
		if err := encode.Encode(out, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
