package main

import (
	"fmt"

	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/filter"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	pOpts := cfg.parseOpts()
	var f *filter.Filter
	if cfg.Filter != "" {
		f, err = filter.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		pOpts = append(pOpts, parse.Callback(f.Callback()))
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, cc.Out, args, pOpts, func(_ string, doc *ir.Node) error {
		if f != nil {
			if err := f.Err(); err != nil {
				return fmt.Errorf("error evaluating filter %s: %w", f, err)
			}
		}
		return encode.Encode(doc, cc.Out, opts...)
	})
}
