package main

import (
	"fmt"

	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/ir/jpointer"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a JSON pointer", cli.ErrUsage)
	}
	p, err := jpointer.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, cc.Out, args[1:], cfg.parseOpts(), func(_ string, doc *ir.Node) error {
		v, err := doc.AtPointer(p)
		if err != nil {
			return err
		}
		return encode.Encode(v, cc.Out, opts...)
	})
}
