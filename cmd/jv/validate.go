package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonir/parse"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		if parse.Accept(d, cfg.parseOpts()...) {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
			continue
		}
		bad++
		// Accept does not keep the error, so parse again to report it.
		_, err = parse.Parse(d, cfg.parseOpts()...)
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
	}
	if bad != 0 {
		theLog.Error("validation failed", "invalid", bad, "files", len(args))
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}
