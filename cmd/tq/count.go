package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/ops"
)

func count(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		return err
	}
	var preds []ops.Pred
	if cfg.Expr != "" {
		pred, err := ops.PredExpr(cfg.Expr)
		if err != nil {
			return err
		}
		preds = append(preds, pred)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, f, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		n, err := cfg.Ops.Count(envelope.New(node), f, preds...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, n)
	}
	return nil
}
