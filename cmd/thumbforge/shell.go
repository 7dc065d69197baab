package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/clipboard"
	"github.com/example/thumbforge/internal/editor"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/panel"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

type shellCmd struct {
	*root
	fs    *flag.FlagSet
	kind  string
	execs commandList
	in    io.Reader
	sess  *editor.Session
}

func (c *shellCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseShellCmd(args []string, r *root) (*shellCmd, error) {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	c := &shellCmd{root: r.subcommand("shell"), fs: fs, in: os.Stdin}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.kind, "kind", "", "output kind ("+kindList()+")")
	fs.Var(&c.execs, "e", "execute a shell command and exit (may be repeated)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *shellCmd) Run() error {
	sess, err := c.newSession(c.kind)
	if err != nil {
		return err
	}
	c.sess = sess

	if len(c.execs) > 0 {
		for _, line := range c.execs {
			done, err := c.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	out := c.out()
	fmt.Fprintln(out, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := c.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.errOut(), err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

var shellHelp = []struct{ usage, about string }{
	{"text [content]", "add a text block"},
	{"type content", "replace the selected text"},
	{"image FILE", "place an image, fitted to the canvas"},
	{"select X Y", "select the topmost object at a canvas point"},
	{"move DX DY", "move the selection"},
	{"delete", "remove the selection"},
	{"template NAME", "apply a template"},
	{"filter NAME", "filter every image"},
	{"scheme NAME", "apply a colour scheme"},
	{"bg COLOR", "set the background"},
	{"color COLOR", "set the text colour"},
	{"size N", "set the font size"},
	{"kind NAME", "switch output kind"},
	{"objects", "list canvas objects"},
	{"save [FILE]", "export PNG (or PDF by extension); no FILE writes to the save dir"},
	{"copy", "copy the thumbnail to the clipboard"},
	{"exit", "leave the shell"},
}

// executeLine runs one shell command. done reports that the shell should
// stop.
func (c *shellCmd) executeLine(line string) (done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)
	s := c.sess
	out := c.out()

	switch strings.ToLower(verb) {
	case "exit", "quit":
		return true, nil
	case "help":
		for _, h := range shellHelp {
			fmt.Fprintf(out, "  %-16s %s\n", h.usage, h.about)
		}
	case "text":
		s.AddText()
		if rest != "" {
			s.Panel.SetText(strings.ReplaceAll(rest, `\n`, "\n"))
		}
	case "type":
		if s.Panel.Mode() != panel.Editing {
			return false, fmt.Errorf("type: no text selected")
		}
		s.Panel.SetText(strings.ReplaceAll(rest, `\n`, "\n"))
	case "image":
		if rest == "" {
			return false, fmt.Errorf("image: missing file")
		}
		if err := insertImageFile(s, rest); err != nil {
			return false, fmt.Errorf("image: %w", err)
		}
	case "select":
		x, y, err := twoInts(args)
		if err != nil {
			return false, fmt.Errorf("select: %w", err)
		}
		if s.SelectAt(x, y) == nil {
			fmt.Fprintln(out, "nothing selected")
		}
	case "move":
		dx, dy, err := twoInts(args)
		if err != nil {
			return false, fmt.Errorf("move: %w", err)
		}
		s.MoveActive(float64(dx), float64(dy))
	case "delete":
		fmt.Fprintf(out, "deleted %d objects\n", s.Delete())
	case "template":
		if err := s.ApplyTemplate(rest); err != nil {
			return false, fmt.Errorf("template: %w", err)
		}
	case "filter":
		n, err := s.ApplyFilter(rest)
		if err != nil {
			return false, fmt.Errorf("filter: %w", err)
		}
		if n == 0 {
			fmt.Fprintln(out, "no image to filter")
		}
	case "scheme":
		if err := s.ApplyScheme(rest); err != nil {
			return false, fmt.Errorf("scheme: %w", err)
		}
	case "bg":
		if err := s.Panel.SetBackgroundHex(rest); err != nil {
			return false, fmt.Errorf("bg: %w", err)
		}
	case "color":
		if err := s.Panel.SetFontColorHex(rest); err != nil {
			return false, fmt.Errorf("color: %w", err)
		}
	case "size":
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return false, fmt.Errorf("size: %w", err)
		}
		s.Panel.SetFontSize(v)
	case "kind":
		k, err := output.Parse(rest)
		if err != nil {
			return false, fmt.Errorf("kind: %w", err)
		}
		s.ApplySizePreset(k)
	case "objects":
		c.listObjects()
	case "save":
		return false, c.save(rest)
	case "copy":
		img := s.Surface.Render()
		if err := clipboard.WriteImage(img); err != nil {
			return false, fmt.Errorf("copy: %w", err)
		}
		detail := s.Kind.Label() + " thumbnail"
		fmt.Fprintf(out, "copied %s to clipboard\n", detail)
		c.notifyCopy(detail, img)
	default:
		return false, fmt.Errorf("unknown command %q (try help)", verb)
	}
	return false, nil
}

func (c *shellCmd) save(path string) error {
	s := c.sess
	if path == "" {
		saved, err := s.ExportFile()
		if err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Fprintf(c.out(), "saved %s\n", saved)
		c.notifyExport(saved)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		err = s.ExportPDF(f)
	} else {
		err = s.ExportPNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	fmt.Fprintf(c.out(), "saved %s\n", path)
	c.notifyExport(path)
	return nil
}

func (c *shellCmd) listObjects() {
	out := c.out()
	active := c.sess.Surface.ActiveObjects()
	for i, obj := range c.sess.Surface.Objects() {
		marker := " "
		for _, a := range active {
			if a == obj {
				marker = "*"
			}
		}
		b := canvas.Bounds(obj)
		switch o := obj.(type) {
		case *canvas.Text:
			fmt.Fprintf(out, "%s %2d: text  %v %q size %.0f %s\n", marker, i, b, o.Content, o.FontSize, panel.Hex(o.Fill))
		case *canvas.Image:
			filter := o.Filter
			if filter == "" {
				filter = "none"
			}
			fmt.Fprintf(out, "%s %2d: image %v scale %.3f filter %s\n", marker, i, b, o.Scale, filter)
		case *canvas.Rect:
			fmt.Fprintf(out, "%s %2d: rect  %v\n", marker, i, b)
		}
	}
}

func twoInts(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want two numbers, got %d", len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
