package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/treema-format/treema/ir"
)

type colors struct {
	kind  func(string, ...any) string
	name  func(string, ...any) string
	value func(string, ...any) string
	meta  func(string, ...any) string
}

func newColors() *colors {
	return &colors{
		kind:  color.RGB(74, 92, 138).SprintfFunc(),
		name:  color.RGB(196, 96, 16).SprintfFunc(),
		value: color.RGB(128, 216, 236).SprintfFunc(),
		meta:  color.BlueString,
	}
}

// dumpNode prints an indented tree view: kind, name, value, with
// attributes on the owning line.
func dumpNode(w io.Writer, n *ir.Node, cs *colors, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	line := indent + cs.kind("%s", n.Kind)
	if n.Name != "" {
		line += " " + cs.name("%s", n.Name)
	}
	if n.Label != "" {
		line += " " + cs.meta("%s", n.Label)
	}
	if n.Value != nil {
		line += ": " + cs.value("%s", n.Value.Text())
	}
	for _, a := range n.Attributes {
		line += " " + cs.meta("@%s=%s", a.Name, a.Value.Text())
	}
	fmt.Fprintln(w, line)
	for _, c := range n.Children {
		dumpNode(w, c, cs, depth+1)
	}
}

func writeOut(cfg *MainConfig, w io.Writer, n *ir.Node, in string) error {
	inFmt := cfg.inFormat(in)
	if cfg.OutFormat == nil && cfg.useColor(w) {
		dumpNode(w, n, newColors(), 0)
		return nil
	}
	out := cfg.outFormat(inFmt)
	var err error
	if out != inFmt {
		n, err = cfg.Engine.Convert(n, inFmt, out)
		if err != nil {
			return err
		}
	}
	d, err := encode(n, out)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		fmt.Fprintln(w)
	}
	return nil
}
