package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/thumbforge/internal/editor"
	"github.com/example/thumbforge/internal/toolbar"
	"github.com/example/thumbforge/internal/ui"
)

type editCmd struct {
	*root
	fs       *flag.FlagSet
	kind     string
	image    string
	template string
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	c := &editCmd{root: r.subcommand("edit"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.kind, "kind", "", "output kind ("+kindList()+")")
	fs.StringVar(&c.image, "image", "", "open this image on the canvas")
	fs.StringVar(&c.template, "template", "", "start from this template")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *editCmd) Run() error {
	sess, err := c.prepare()
	if err != nil {
		return err
	}
	w := ui.New(sess, c.activeTheme, ui.WithNotifier(c.notifier))
	w.Run()
	return nil
}

// prepare builds the session the window opens with.
func (c *editCmd) prepare() (*editor.Session, error) {
	sess, err := c.newSession(c.kind)
	if err != nil {
		return nil, err
	}
	if c.template != "" {
		if err := sess.ApplyTemplate(c.template); err != nil {
			return nil, fmt.Errorf("edit template %s: %w", c.template, err)
		}
	}
	if c.image != "" {
		if err := insertImageFile(sess, c.image); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func insertImageFile(sess *editor.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	img, err := toolbar.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if sess.InsertImage(img) == nil {
		return fmt.Errorf("decode %s: empty image", path)
	}
	return nil
}
