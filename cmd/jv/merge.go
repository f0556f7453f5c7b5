package main

import (
	"fmt"

	"github.com/signadot/jsonir"
	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Create {
		if len(args) != 2 {
			return fmt.Errorf("%w: merge -d requires 2 args, got %v", cli.ErrUsage, args)
		}
		a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		return encode.Encode(jsonir.CreateMergePatch(a, b), cc.Out, opts...)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a merge patch argument", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cc, args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cc, cc.Out, args[1:], cfg.parseOpts(), func(_ string, doc *ir.Node) error {
		jsonir.MergePatch(doc, p)
		return encode.Encode(doc, cc.Out, opts...)
	})
}
