package main

import (
	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, cc.Out, args, cfg.parseOpts(), func(_ string, doc *ir.Node) error {
		if !cfg.Undo {
			return encode.Encode(doc.Flatten(), cc.Out, opts...)
		}
		res, err := doc.Unflatten()
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}
