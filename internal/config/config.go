package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/theme"
)

// Environment overrides, consulted between command line flags and the file.
const (
	EnvKind  = "THUMBFORGE_KIND"
	EnvTheme = "THUMBFORGE_THEME"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Kind     string
	Theme    string
	SaveDir  string
	FontSize float64
	Notify   Notify
	Themes   map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// ResolveKind picks the output kind from the flag, then THUMBFORGE_KIND,
// then the file, then the default.
func (c *Config) ResolveKind(flag string) (output.Kind, error) {
	for _, v := range []string{flag, os.Getenv(EnvKind), c.Kind} {
		if strings.TrimSpace(v) != "" {
			return output.Parse(v)
		}
	}
	return output.Default, nil
}

// ResolveTheme returns the theme for a name chosen the same way as
// ResolveKind. Themes declared in the file win over embedded ones.
func (c *Config) ResolveTheme(flag string) (*theme.Theme, error) {
	name := ""
	for _, v := range []string{flag, os.Getenv(EnvTheme), c.Theme} {
		if strings.TrimSpace(v) != "" {
			name = strings.TrimSpace(v)
			break
		}
	}
	if t, ok := c.Themes[name]; ok {
		return t, nil
	}
	return theme.NewLoader().Load(name)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Kind != "" {
		fmt.Fprintf(&sb, "kind = %s\n", c.Kind)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.FontSize > 0 {
		fmt.Fprintf(&sb, "font_size = %s\n", strconv.FormatFloat(c.FontSize, 'f', -1, 64))
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		theme.Write(&sb, c.Themes[name])
		sb.WriteString("\n")
	}
	return sb.String()
}
