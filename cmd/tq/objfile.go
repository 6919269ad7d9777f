package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treema-format/treema/adapt"
	"github.com/treema-format/treema/format"
	"github.com/treema-format/treema/ir"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, format.ID, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading %q: %w", path, err)
	}
	f := cfg.inFormat(path)
	node, err := decode(d, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return node, f, nil
}

func decode(d []byte, f format.ID) (*ir.Node, error) {
	switch f {
	case format.JSON:
		return adapt.DecodeJSON(d)
	case format.CSV:
		return adapt.DecodeCSV(d)
	case format.XML:
		return adapt.DecodeXML(d)
	case format.YAML:
		return adapt.DecodeYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

func encode(n *ir.Node, f format.ID) ([]byte, error) {
	switch f {
	case format.JSON:
		return adapt.EncodeJSON(n)
	case format.CSV:
		return adapt.EncodeCSV(n)
	case format.XML:
		return adapt.EncodeXML(n)
	case format.YAML:
		return adapt.EncodeYAML(n)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}
