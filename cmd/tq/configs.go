package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/convert"
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ops"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render trees with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	C bool `cli:"name=c aliases=csv desc='do i/o in csv'"`
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.ID

	Registry *format.Registry
	Engine   *convert.Engine
	Ops      *ops.Ops

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	reg := format.Default()
	return &MainConfig{
		Registry: reg,
		Engine:   convert.New(reg),
		Ops:      ops.New(reg),
	}
}

func (cfg *MainConfig) fmtFunc(fps ...**format.ID) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseID(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat resolves the input format: explicit flags win, then the
// file suffix, then json.
func (cfg *MainConfig) inFormat(file string) format.ID {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return format.JSON
	case cfg.C:
		return format.CSV
	case cfg.X:
		return format.XML
	case cfg.Y:
		return format.YAML
	}
	for _, f := range format.Builtin() {
		if f.Suffix() != "" && hasSuffix(file, f.Suffix()) {
			return f
		}
	}
	if hasSuffix(file, ".yml") {
		return format.YAML
	}
	return format.JSON
}

func (cfg *MainConfig) outFormat(in format.ID) format.ID {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return in
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='item predicate expression'"`

	Filter *cli.Command
}

type GroupConfig struct {
	*MainConfig

	Key string `cli:"name=k desc='group key expression'"`

	Group *cli.Command
}

type CountConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='item predicate expression'"`

	Count *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
