package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/example/thumbforge/internal/clipboard"
	"github.com/example/thumbforge/internal/editor"
)

type renderCmd struct {
	*root
	fs          *flag.FlagSet
	kind        string
	template    string
	image       string
	text        string
	fontSize    float64
	fontColor   string
	filter      string
	background  string
	scheme      string
	output      string
	format      string
	toClipboard bool
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c := &renderCmd{root: r.subcommand("render"), fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.kind, "kind", "", "output kind ("+kindList()+")")
	fs.StringVar(&c.template, "template", "", "apply this template first")
	fs.StringVar(&c.image, "image", "", "place this image on the canvas")
	fs.StringVar(&c.text, "text", "", "add a text block; \\n starts a new line")
	fs.Float64Var(&c.fontSize, "size", 0, "font size of the -text block")
	fs.StringVar(&c.fontColor, "color", "", "colour of the -text block")
	fs.StringVar(&c.filter, "filter", "", "filter applied to the image")
	fs.StringVar(&c.background, "bg", "", "background colour")
	fs.StringVar(&c.scheme, "scheme", "", "colour scheme for background and text")
	fs.StringVar(&c.output, "out", "", "write the thumbnail to this file, or - for stdout")
	fs.StringVar(&c.format, "format", "", "png or pdf; defaults to the -out extension")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the thumbnail to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.output == "" && !c.toClipboard {
		return nil, errors.New("render needs -out or -to-clipboard")
	}
	if c.output == "-" && c.toClipboard {
		return nil, errors.New("-out - cannot be used with -to-clipboard")
	}
	if c.format == "" {
		c.format = "png"
		if strings.EqualFold(filepath.Ext(c.output), ".pdf") {
			c.format = "pdf"
		}
	}
	c.format = strings.ToLower(c.format)
	if c.format != "png" && c.format != "pdf" {
		return nil, fmt.Errorf("unknown format %q: want png or pdf", c.format)
	}
	if c.toClipboard && c.format != "png" {
		return nil, errors.New("-to-clipboard only supports png")
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	sess, err := c.newSession(c.kind)
	if err != nil {
		return err
	}
	if err := c.compose(sess); err != nil {
		return err
	}
	if c.output != "" {
		if err := c.write(sess); err != nil {
			return err
		}
	}
	if c.toClipboard {
		img := sess.Surface.Render()
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := sess.Kind.Label() + " thumbnail"
		fmt.Fprintf(c.errOut(), "copied %s to clipboard\n", detail)
		c.notifyCopy(detail, img)
	}
	return nil
}

// compose applies the flags in a fixed order: template, image, text,
// scheme, background, filter.
func (c *renderCmd) compose(sess *editor.Session) error {
	if c.template != "" {
		if err := sess.ApplyTemplate(c.template); err != nil {
			return fmt.Errorf("render template %s: %w", c.template, err)
		}
	}
	if c.image != "" {
		if err := insertImageFile(sess, c.image); err != nil {
			return fmt.Errorf("render image: %w", err)
		}
	}
	if c.text != "" {
		sess.AddText()
		sess.Panel.SetText(strings.ReplaceAll(c.text, `\n`, "\n"))
		if c.fontSize > 0 {
			sess.Panel.SetFontSize(c.fontSize)
		}
	}
	if c.scheme != "" {
		if err := sess.ApplyScheme(c.scheme); err != nil {
			return fmt.Errorf("render scheme: %w", err)
		}
	}
	if c.fontColor != "" {
		if err := sess.Panel.SetFontColorHex(c.fontColor); err != nil {
			return fmt.Errorf("render color: %w", err)
		}
	}
	if c.background != "" {
		if err := sess.Panel.SetBackgroundHex(c.background); err != nil {
			return fmt.Errorf("render bg: %w", err)
		}
	}
	if c.filter != "" {
		n, err := sess.ApplyFilter(c.filter)
		if err != nil {
			return fmt.Errorf("render filter: %w", err)
		}
		if n == 0 {
			fmt.Fprintf(c.errOut(), "warning: filter %s has no image to act on\n", c.filter)
		}
	}
	return nil
}

func (c *renderCmd) write(sess *editor.Session) error {
	if c.output == "-" {
		w := c.out()
		if isTerminal(w) {
			return errors.New("refusing to write image data to a terminal; redirect stdout or use -out FILE")
		}
		if err := c.encode(sess, w); err != nil {
			return fmt.Errorf("write %s to stdout: %w", strings.ToUpper(c.format), err)
		}
		fmt.Fprintf(c.errOut(), "wrote %s data to stdout\n", strings.ToUpper(c.format))
		return nil
	}
	if dir := filepath.Dir(c.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.output, err)
	}
	if err := c.encode(sess, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.output, err)
	}
	fmt.Fprintf(c.errOut(), "saved %s\n", c.output)
	if abs, err := filepath.Abs(c.output); err == nil {
		c.notifyExport(abs)
	} else {
		c.notifyExport(c.output)
	}
	return nil
}

func (c *renderCmd) encode(sess *editor.Session, w io.Writer) error {
	if c.format == "pdf" {
		return sess.ExportPDF(w)
	}
	return sess.ExportPNG(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
