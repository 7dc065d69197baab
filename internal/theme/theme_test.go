package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nselection = #FF000080\n# comment\nUnknown: #000000\n"))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Mine" {
		t.Errorf("name %q", th.Name)
	}
	if th.Selection != (color.RGBA{255, 0, 0, 128}) {
		t.Errorf("selection %+v", th.Selection)
	}
	if th.Background != Default().Background {
		t.Error("missing keys should keep defaults")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	th := Default()
	th.Name = "Round"
	th.StatusText = color.RGBA{1, 2, 3, 4}
	var buf bytes.Buffer
	if err := Write(&buf, th); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *th {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, th)
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "dark" || names[1] != "light" {
		t.Fatalf("embedded themes %v", names)
	}
	l := &Loader{}
	for _, n := range names {
		th, err := l.Load(n)
		if err != nil {
			t.Fatalf("load %s: %v", n, err)
		}
		if th.Name == "" {
			t.Errorf("%s has no name", n)
		}
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected missing theme error")
	}
}

func TestLoaderConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := (&Loader{ConfigDir: dir}).Load("mine")
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Mine" {
		t.Fatalf("name %q", th.Name)
	}
}
