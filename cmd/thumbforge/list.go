package main

import (
	"flag"
	"fmt"

	"github.com/example/thumbforge/internal/filter"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/panel"
	"github.com/example/thumbforge/internal/template"
)

type templatesCmd struct {
	*root
	fs   *flag.FlagSet
	kind string
}

func parseTemplatesCmd(args []string, r *root) (*templatesCmd, error) {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	cmd := &templatesCmd{root: r.subcommand("templates"), fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.kind, "kind", "", "only list templates of this kind")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	if cmd.kind != "" {
		if _, err := output.Parse(cmd.kind); err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

func (c *templatesCmd) Run() error {
	kinds := output.Kinds()
	if c.kind != "" {
		k, err := output.Parse(c.kind)
		if err != nil {
			return err
		}
		kinds = []output.Kind{k}
	}
	out := c.out()
	for _, k := range kinds {
		fmt.Fprintf(out, "%s (%s):\n", k, k.Label())
		for i, p := range template.For(k) {
			fmt.Fprintf(out, "  F%d %-8s %s %s\n", i+1, p.Name, panel.Hex(p.Background), p.Description)
		}
	}
	return nil
}

func (c *templatesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type kindsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseKindsCmd(args []string, r *root) (*kindsCmd, error) {
	fs := flag.NewFlagSet("kinds", flag.ContinueOnError)
	cmd := &kindsCmd{root: r.subcommand("kinds"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *kindsCmd) Run() error {
	out := c.out()
	fmt.Fprintln(out, "output kinds (* marks the default):")
	for _, k := range output.Kinds() {
		marker := " "
		if k == output.Default {
			marker = "*"
		}
		sz := k.Size()
		fmt.Fprintf(out, "%s %-8s %4dx%-4d %s\n", marker, k, sz.X, sz.Y, k.Label())
	}
	return nil
}

func (c *kindsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type filtersCmd struct {
	*root
	fs *flag.FlagSet
}

func parseFiltersCmd(args []string, r *root) (*filtersCmd, error) {
	fs := flag.NewFlagSet("filters", flag.ContinueOnError)
	cmd := &filtersCmd{root: r.subcommand("filters"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *filtersCmd) Run() error {
	out := c.out()
	fmt.Fprintln(out, "image filters:")
	for _, name := range filter.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "colour schemes:")
	for _, s := range panel.Schemes() {
		fmt.Fprintf(out, "  %-6s background %s text %s\n", s.Name, panel.Hex(s.Background), panel.Hex(s.Text))
	}
	return nil
}

func (c *filtersCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
