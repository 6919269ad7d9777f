package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func doConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: convert requires -O <format>", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, in, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		out := *cfg.OutFormat
		ok, err := cfg.Engine.IsCompatible(in, out)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s is not a usable target for %s", out, in)
		}
		res, err := cfg.Engine.Convert(node, in, out)
		if err != nil {
			return err
		}
		d, err := encode(res, out)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		if len(d) > 0 && d[len(d)-1] != '\n' {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
