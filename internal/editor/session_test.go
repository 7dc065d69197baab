package editor

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/panel"
)

func waitUpload(t *testing.T, s *Session) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for s.Toolbar.Uploading() {
		if time.Now().After(deadline) {
			t.Fatal("upload did not finish")
		}
		s.Loop.Drain()
		time.Sleep(time.Millisecond)
	}
}

func TestNewSession(t *testing.T) {
	s := New(output.KindNote)
	if s.ID == "" {
		t.Fatal("missing session id")
	}
	if w, h := s.Surface.Size(); w != 1280 || h != 670 {
		t.Fatalf("size %dx%d", w, h)
	}
	if other := New(output.KindNote); other.ID == s.ID {
		t.Fatal("session ids collide")
	}
}

func TestTextEditingFlow(t *testing.T) {
	s := New(output.KindYouTube, WithTextSize(64))
	changes := 0
	s.OnChange(func() { changes++ })

	txt := s.AddText()
	if s.Panel.Mode() != panel.Editing {
		t.Fatal("new text not being edited")
	}
	if txt.FontSize != 64 {
		t.Fatalf("font size %v", txt.FontSize)
	}
	s.Panel.SetText("Hello")
	if txt.Content != "Hello" {
		t.Fatal("panel edit not applied")
	}

	s.MoveActive(10, 5)
	if txt.X != 60 || txt.Y != 55 {
		t.Fatalf("moved to %v,%v", txt.X, txt.Y)
	}

	if s.Delete() != 1 || s.Surface.Len() != 0 {
		t.Fatal("delete failed")
	}
	if s.Panel.Mode() != panel.Idle || s.Selection.Current() != nil {
		t.Fatal("selection survived delete")
	}
	if changes == 0 {
		t.Fatal("no change notifications")
	}
}

func TestSelectAt(t *testing.T) {
	s := New(output.KindYouTube)
	r := &canvas.Rect{X: 100, Y: 100, Width: 50, Height: 50}
	s.Surface.Add(r)
	if s.SelectAt(120, 120) != r || s.Selection.Current() != r {
		t.Fatal("hit not selected")
	}
	if s.SelectAt(5, 5) != nil || s.Selection.Current() != nil {
		t.Fatal("miss did not clear selection")
	}
}

func TestUploadThroughLoop(t *testing.T) {
	s := New(output.KindYouTube)
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 360))); err != nil {
		t.Fatal(err)
	}
	if !s.Upload(&buf) {
		t.Fatal("upload rejected")
	}
	if s.Upload(strings.NewReader("")) {
		t.Fatal("concurrent upload accepted")
	}
	waitUpload(t, s)
	img, ok := s.Selection.Current().(*canvas.Image)
	if !ok || img.Scale != 2 {
		t.Fatalf("uploaded image %+v", s.Selection.Current())
	}
}

func TestTemplateAndPreset(t *testing.T) {
	s := New(output.KindYouTube)
	if err := s.ApplyTemplate("howto"); err != nil {
		t.Fatal(err)
	}
	if s.Surface.Len() != 2 {
		t.Fatalf("objects %d", s.Surface.Len())
	}
	if err := s.ApplyTemplate("article"); err == nil {
		t.Fatal("note template applied to youtube session")
	}
	s.ApplySizePreset(output.KindNote)
	if s.Kind != output.KindNote {
		t.Fatal("kind not switched")
	}
	if err := s.ApplyTemplate("article"); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Surface.Size(); w != 1280 || h != 670 {
		t.Fatalf("size %dx%d", w, h)
	}
}

func TestExportFileUsesSaveDir(t *testing.T) {
	dir := t.TempDir()
	s := New(output.KindYouTube, WithSaveDir(dir))
	path, err := s.ExportFile()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".png") {
		t.Fatalf("path %s", path)
	}
}
