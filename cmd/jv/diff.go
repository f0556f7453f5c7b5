package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsonir"
	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	if cfg.Text {
		opts := cfg.plainOpts()
		if cfg.Indent < 0 {
			opts = append(opts, encode.EncodeIndent(2))
		}
		s, err := libdiff.TextDiff(a, b, cfg.colored(w), opts...)
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(w, s)
		return true, err
	}
	d := jsonir.Diff(a, b)
	if err := encode.Encode(d, w, cfg.encOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}
