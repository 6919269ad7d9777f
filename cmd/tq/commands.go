package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, csv/c, xml/x, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, {
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, csv/c, xml/x, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tq").
		WithSynopsis("tq [opts] command [opts]").
		WithDescription("tq is a tool for querying and converting structured trees.").
		WithOpts(opts...).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ConvertCommand(cfg),
			FilterCommand(cfg),
			GroupCommand(cfg),
			CountCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view tree files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("navigate a path in each file's format grammar").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("co", "conv").
		WithSynopsis("convert -O <format> [files]").
		WithDescription("convert trees between formats").
		WithRun(func(cc *cli.Context, args []string) error {
			return doConvert(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -e <expr> [files]").
		WithDescription("keep the items satisfying a predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Group, "group").
		WithSynopsis("group -k <expr> [files]").
		WithDescription("group items by a key expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return group(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithSynopsis("count [-e <expr>] [files]").
		WithDescription("count items, optionally those satisfying a predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return count(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a b").
		WithDescription("diff two tree files of the same format").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
