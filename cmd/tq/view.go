package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		node, _, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeOut(cfg.MainConfig, cc.Out, node, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out, "---")
		}
	}
	return nil
}
