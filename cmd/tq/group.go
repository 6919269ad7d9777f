package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/envelope"
	"github.com/treema-format/treema/ir"
	"github.com/treema-format/treema/ops"
)

func group(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Group.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Key == "" {
		return fmt.Errorf("%w: group requires -k <expr>", cli.ErrUsage)
	}
	key, err := ops.KeyExpr(cfg.Key)
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
		groups, err := cfg.Ops.GroupBy(envelope.New(node), f, key)
		if err != nil {
			return err
		}
		res := ir.NewRecord("")
		for _, k := range slices.Sorted(maps.Keys(groups)) {
			res.Children = append(res.Children,
				ir.NewCollection(k, groups[k]...))
		}
		if err := writeOut(cfg.MainConfig, cc.Out, res, file); err != nil {
			return err
		}
	}
	return nil
}
