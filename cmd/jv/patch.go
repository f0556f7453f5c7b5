package main

import (
	"fmt"

	"github.com/signadot/jsonir"
	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/ir"
	"github.com/signadot/jsonir/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cc, args[0], cfg.parseOpts())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pOpts := []jsonir.PatchOption{jsonir.CreateParents(cfg.Parents)}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(cc, cc.Out, args[1:], cfg.parseOpts(), func(_ string, doc *ir.Node) error {
		res, err := jsonir.Patch(doc, p, pOpts...)
		if err != nil {
			return err
		}
		if cfg.Check {
			if err := checkPatch(doc, p, res); err != nil {
				return err
			}
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}

// checkPatch applies p to doc with evanphx/json-patch and compares the
// outcome with res.
func checkPatch(doc, p, res *ir.Node) error {
	ops, err := jsonpatch.DecodePatch([]byte(p.String()))
	if err != nil {
		theLog.Warn("reference implementation rejected patch", "error", err)
		return nil
	}
	out, err := ops.Apply([]byte(doc.String()))
	if err != nil {
		theLog.Warn("reference implementation failed to apply patch", "error", err)
		return nil
	}
	want, err := parse.Parse(out)
	if err != nil {
		return fmt.Errorf("error decoding reference result: %w", err)
	}
	if !ir.Equal(res, want) {
		return fmt.Errorf("result %s differs from reference result %s", res, want)
	}
	theLog.Debug("patch result matches reference")
	return nil
}
