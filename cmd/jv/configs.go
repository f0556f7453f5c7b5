package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonir/encode"
	"github.com/signadot/jsonir/format"
	"github.com/signadot/jsonir/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Indent  int  `cli:"name=indent desc='indent width, negative for compact output'"`
	ASCII   bool `cli:"name=ascii desc='escape non-ASCII characters'"`
	Ordered bool `cli:"name=ordered desc='keep object members in input order'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) pickFormat(override *format.Format) format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(cfg.pickFormat(cfg.InFormat)),
	}
	if cfg.Ordered {
		res = append(res, parse.OrderedObjects())
	}
	return res
}

// plainOpts are the encode options without colors.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.pickFormat(cfg.OutFormat)),
		encode.EncodeIndent(cfg.Indent),
		encode.EnsureASCII(cfg.ASCII),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainOpts()
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w is colored: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	Comments bool   `cli:"name=c desc='allow comments in input'"`
	Filter   string `cli:"name=filter desc='expression deciding which values to keep'"`

	View *cli.Command
}

func (cfg *ViewConfig) parseOpts() []parse.ParseOption {
	return append(cfg.MainConfig.parseOpts(), parse.SkipComments(cfg.Comments))
}

type ValidateConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='allow comments in input'"`
	Lax      bool `cli:"name=lax desc='allow trailing input after the document'"`

	Validate *cli.Command
}

func (cfg *ValidateConfig) parseOpts() []parse.ParseOption {
	return append(cfg.MainConfig.parseOpts(),
		parse.SkipComments(cfg.Comments),
		parse.Strict(!cfg.Lax))
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FlattenConfig struct {
	*MainConfig

	Undo bool `cli:"name=u desc='unflatten instead'"`

	Flatten *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='show a line diff instead of a patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String  bool `cli:"name=s desc='patch arg as string'"`
	Check   bool `cli:"name=check desc='cross check the result against evanphx/json-patch'"`
	Parents bool `cli:"name=p aliases=parents desc='create missing parents on add'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	Create bool `cli:"name=d desc='create a merge patch from the first file to the second'"`

	Merge *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	String bool `cli:"name=s desc='consider match a string argument'"`
}

type QueryConfig struct {
	*MainConfig

	Raw bool `cli:"name=r desc='output string results without quotes'"`

	Query *cli.Command
}
