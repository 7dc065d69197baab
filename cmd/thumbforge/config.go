package main

import (
	"flag"
	"fmt"

	"github.com/example/thumbforge/internal/config"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c := &configCmd{root: r.subcommand("config"), fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) != 1 {
		return &UsageError{of: c}
	}
	switch args[0] {
	case "print":
		fmt.Fprint(c.out(), c.current().String())
		return nil
	case "save":
		path, err := config.NewLoader(version, configPathOverride).Save(c.current())
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(c.errOut(), "Configuration saved to %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

// current folds the global flags into the loaded configuration.
func (c *configCmd) current() *config.Config {
	cfg := c.config
	if cfg == nil {
		cfg = config.New()
	}
	merged := *cfg
	if c.themeName != "" {
		merged.Theme = c.themeName
	}
	if c.kindName != "" {
		merged.Kind = c.kindName
	}
	merged.Notify = config.Notify{Export: c.exportAlerts, Copy: c.copyAlerts}
	return &merged
}
