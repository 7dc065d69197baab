package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/example/thumbforge/internal/config"
	"github.com/example/thumbforge/internal/editor"
	"github.com/example/thumbforge/internal/notify"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	exportAlerts bool
	copyAlerts   bool
	themeName    string
	kindName     string
	activeTheme  *theme.Theme
	stdout       io.Writer
	stderr       io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	if r == nil {
		return &root{program: "thumbforge " + name, config: config.New(), activeTheme: theme.Default()}
	}
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	sub := *r
	sub.fs = nil
	sub.program = program
	return &sub
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("thumbforge", flag.ContinueOnError),
		program:  "thumbforge",
		notifier: notify.New(prefs),
		config:   cfg,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting a thumbnail")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	// Empty means: fall back to the environment, then the config file.
	r.fs.StringVar(&r.themeName, "theme", "", "window theme ("+strings.Join(theme.Names(), ", ")+")")
	r.fs.StringVar(&r.kindName, "kind", "", "default output kind ("+kindList()+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	t, err := r.config.ResolveTheme(r.themeName)
	if err != nil {
		fmt.Fprintf(r.errOut(), "warning: %v. using default theme.\n", err)
		t = theme.Default()
	}
	r.activeTheme = t

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "render":
		cmd, err = parseRenderCmd(subArgs, r)
	case "shell":
		cmd, err = parseShellCmd(subArgs, r)
	case "templates":
		cmd, err = parseTemplatesCmd(subArgs, r)
	case "kinds":
		cmd, err = parseKindsCmd(subArgs, r)
	case "filters":
		cmd, err = parseFiltersCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		// Usage was already printed by the flag set.
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession builds an editor session honouring the kind precedence and the
// configured save directory and text size.
func (r *root) newSession(kindFlag string) (*editor.Session, error) {
	cfg := r.config
	if cfg == nil {
		cfg = config.New()
	}
	if kindFlag == "" {
		kindFlag = r.kindName
	}
	kind, err := cfg.ResolveKind(kindFlag)
	if err != nil {
		return nil, err
	}
	var opts []editor.Option
	if cfg.SaveDir != "" {
		opts = append(opts, editor.WithSaveDir(cfg.SaveDir))
	}
	if cfg.FontSize > 0 {
		opts = append(opts, editor.WithTextSize(cfg.FontSize))
	}
	return editor.New(kind, opts...), nil
}

func (r *root) notifyExport(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(path)
}

func (r *root) notifyCopy(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail, img)
}

func (r *root) out() io.Writer {
	if r == nil || r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

func (r *root) errOut() io.Writer {
	if r == nil || r.stderr == nil {
		return os.Stderr
	}
	return r.stderr
}

func kindList() string {
	var names []string
	for _, k := range output.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
