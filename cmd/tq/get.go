package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	segs := strings.Split(strings.TrimPrefix(path, "$."), ".")
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		node, f, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		s, err := cfg.Registry.Lookup(f)
		if err != nil {
			return err
		}
		res := s.NavigatePath(node, segs)
		if res == nil {
			return cli.ExitCodeErr(1)
		}
		if err := writeOut(cfg.MainConfig, cc.Out, res, file); err != nil {
			return err
		}
	}
	return nil
}
