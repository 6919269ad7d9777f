package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	a, _, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	d := libdiff.Diff(a, b)
	if d == nil {
		return nil
	}
	if err := writeOut(cfg.MainConfig, cc.Out, d, args[0]); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
