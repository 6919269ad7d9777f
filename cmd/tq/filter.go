package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/ops"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e <expr>", cli.ErrUsage)
	}
	pred, err := ops.PredExpr(cfg.Expr)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, f, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		env, err := cfg.Ops.Filter(envelope.New(node), f, pred)
		if err != nil {
			return err
		}
		if err := writeOut(cfg.MainConfig, cc.Out, env.Data, file); err != nil {
			return err
		}
	}
	return nil
}
