package notify

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/thumbforge/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func capture(out *[]sent) SendFunc {
	return func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		*out = append(*out, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
}

func TestDisabledByDefault(t *testing.T) {
	var got []sent
	n := NewWithSender(DefaultPreferences(), capture(&got))
	n.Export("x.png")
	n.Copy("", nil)
	if len(got) != 0 {
		t.Fatalf("sent %v", got)
	}
}

func TestExportUsesFileAsIcon(t *testing.T) {
	var got []sent
	n := NewWithSender(DefaultPreferences(), capture(&got))
	n.Enable(EventExport, true)
	path := filepath.Join(t.TempDir(), "thumbnail-1.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n.Export(path)
	if len(got) != 1 {
		t.Fatalf("sent %d", len(got))
	}
	if got[0].title != "thumbforge" || got[0].body != "Exported "+path || got[0].opts.IconPath != path {
		t.Fatalf("notification %+v", got[0])
	}
}

func TestCopyPreviewIsTemporary(t *testing.T) {
	var got []sent
	n := NewWithSender(DefaultPreferences(), capture(&got))
	n.Enable(EventCopy, true)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if len(got) != 1 || !got[0].iconExisted {
		t.Fatalf("notification %+v", got)
	}
	if got[0].body != "Copied thumbnail to clipboard" {
		t.Fatalf("body %q", got[0].body)
	}
	if _, err := os.Stat(got[0].opts.IconPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("preview not removed")
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv(EnvTitle, "Thumbs")
	t.Setenv(EnvExportText, "Saved it")
	t.Setenv(EnvCopyText, "")
	prefs := LoadPreferences()
	if prefs.Title != "Thumbs" || prefs.Templates[EventExport] != "Saved it" {
		t.Fatalf("prefs %+v", prefs)
	}
	if !strings.Contains(prefs.Templates[EventCopy], "%s") {
		t.Fatalf("copy template %q", prefs.Templates[EventCopy])
	}

	var got []sent
	n := NewWithSender(prefs, capture(&got))
	n.Enable(EventExport, true)
	n.Export("a.png")
	if len(got) != 1 || got[0].body != "Saved it" || got[0].title != "Thumbs" {
		t.Fatalf("sent %+v", got)
	}
}
