package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/thumbforge/internal/output"
)

func TestParse(t *testing.T) {
	input := `
kind = note
theme = my_custom_theme
save_dir = /tmp/thumbs
font_size = 56

[notify]
export = true
copy = false

[theme.my_custom_theme]
Background = #111111
Selection: #FF0000
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Kind != "note" {
		t.Errorf("kind %q", cfg.Kind)
	}
	if cfg.Theme != "my_custom_theme" {
		t.Errorf("theme %q", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/thumbs" {
		t.Errorf("save_dir %q", cfg.SaveDir)
	}
	if cfg.FontSize != 56 {
		t.Errorf("font_size %v", cfg.FontSize)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy {
		t.Errorf("notify %+v", cfg.Notify)
	}
	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("theme not loaded")
	}
	if th.Background.R != 0x11 || th.Selection.R != 0xff {
		t.Errorf("theme colours %+v", th)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"kind = tiktok\n",
		"font_size = big\n",
		"[notify]\nexport = maybe\n",
		"[theme.x]\nBackground = blue\n",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `kind = youtube
theme = dark
save_dir = /home/user/thumbs
font_size = 48.5

[notify]
export = true
copy = true

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}
	if cfg.Kind != cfg2.Kind || cfg.Theme != cfg2.Theme || cfg.SaveDir != cfg2.SaveDir || cfg.FontSize != cfg2.FontSize {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1, t2 := cfg.Themes["custom"], cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestResolveKindPrecedence(t *testing.T) {
	cfg := New()
	cfg.Kind = "note"
	t.Setenv(EnvKind, "")

	k, err := cfg.ResolveKind("")
	if err != nil || k != output.KindNote {
		t.Fatalf("file kind: %v %v", k, err)
	}
	t.Setenv(EnvKind, "youtube")
	if k, _ := cfg.ResolveKind(""); k != output.KindYouTube {
		t.Fatalf("env should beat file, got %v", k)
	}
	if k, _ := cfg.ResolveKind("note"); k != output.KindNote {
		t.Fatalf("flag should beat env, got %v", k)
	}
	if _, err := cfg.ResolveKind("square"); err == nil {
		t.Fatal("expected unknown kind error")
	}
	t.Setenv(EnvKind, "")
	if k, _ := New().ResolveKind(""); k != output.Default {
		t.Fatalf("default kind %v", k)
	}
}

func TestResolveTheme(t *testing.T) {
	t.Setenv(EnvTheme, "")
	cfg, err := Parse(strings.NewReader("theme = mine\n[theme.mine]\nBackground = #010203\n"))
	if err != nil {
		t.Fatal(err)
	}
	th, err := cfg.ResolveTheme("")
	if err != nil {
		t.Fatal(err)
	}
	if th.Background.B != 3 {
		t.Fatalf("config theme not used: %+v", th.Background)
	}
	th, err = cfg.ResolveTheme("dark")
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Dark" {
		t.Fatalf("embedded theme not used: %q", th.Name)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "thumbforge.rc")
	l := NewLoader("v1", path)

	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Kind != "" {
		t.Fatal("expected defaults without file")
	}

	cfg.Kind = "note"
	cfg.Notify.Export = true
	saved, err := l.Save(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if saved != path {
		t.Fatalf("saved to %s", saved)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Kind != "note" || !loaded.Notify.Export {
		t.Fatalf("loaded %+v", loaded)
	}
}

func TestLoaderDevMode(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.WriteFile(".thumbforgerc", []byte("kind = note\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if p := NewLoader("dev", "").GetConfigPath(); filepath.Base(p) != ".thumbforgerc" {
		t.Fatalf("dev path %q", p)
	}
	if p := NewLoader("v1.0.0", "").GetConfigPath(); p != "" {
		t.Fatalf("release build picked %q", p)
	}
}
