// Package editor ties the canvas, selection, panel, toolbar and template
// gallery into one editing session.
package editor

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/panel"
	"github.com/example/thumbforge/internal/selection"
	"github.com/example/thumbforge/internal/template"
	"github.com/example/thumbforge/internal/toolbar"
)

// Session is one editor instance. Its methods must run on Loop.
type Session struct {
	ID   string
	Kind output.Kind

	Surface   *canvas.Surface
	Selection *selection.State
	Panel     *panel.Panel
	Toolbar   *toolbar.Toolbar
	Loop      *Loop

	saveDir   string
	textSize  float64
	tbOpts    []toolbar.Option
	listeners []func()
}

// Option configures a Session.
type Option func(*Session)

// WithSaveDir sets where ExportFile writes.
func WithSaveDir(dir string) Option { return func(s *Session) { s.saveDir = dir } }

// WithTextSize sets the font size of text added with AddText.
func WithTextSize(size float64) Option { return func(s *Session) { s.textSize = size } }

// WithToolbarOptions passes options to the toolbar.
func WithToolbarOptions(opts ...toolbar.Option) Option {
	return func(s *Session) { s.tbOpts = append(s.tbOpts, opts...) }
}

// New creates a session sized for kind.
func New(kind output.Kind, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		Kind:    kind,
		Loop:    NewLoop(),
		saveDir: ".",
	}
	for _, o := range opts {
		o(s)
	}
	sz := kind.Size()
	s.Surface = canvas.New(sz.X, sz.Y)
	s.Selection = selection.New()
	s.Selection.Attach(s.Surface)
	s.Panel = panel.New(s.Surface, s.Selection)
	s.Toolbar = toolbar.New(s.Surface, s.tbOpts...)
	s.Selection.Watch(func(canvas.Object) { s.changed() })
	s.logf("new %s session %dx%d", kind.Label(), sz.X, sz.Y)
	return s
}

// SaveDir returns the export directory.
func (s *Session) SaveDir() string { return s.saveDir }

// OnChange registers fn to be called after anything visible changes.
func (s *Session) OnChange(fn func()) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Session) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *Session) logf(format string, args ...any) {
	log.Printf("session %s: %s", s.ID, fmt.Sprintf(format, args...))
}

// AddText adds a text block.
func (s *Session) AddText() *canvas.Text {
	t := s.Toolbar.AddText()
	if t != nil && s.textSize > 0 {
		s.Panel.SetFontSize(s.textSize)
	}
	s.logf("add text")
	s.changed()
	return t
}

// InsertImage places img on the canvas synchronously.
func (s *Session) InsertImage(img image.Image) *canvas.Image {
	obj := s.Toolbar.InsertImage(img)
	if obj != nil {
		b := img.Bounds()
		s.logf("insert image %dx%d scale %.3f", b.Dx(), b.Dy(), obj.Scale)
		s.changed()
	}
	return obj
}

// Upload decodes r in the background. It returns false while another
// upload is pending.
func (s *Session) Upload(r io.Reader) bool {
	ok := s.Toolbar.Upload(r, s.Loop, func(obj *canvas.Image, err error) {
		if err != nil {
			s.logf("upload failed")
		} else if obj != nil {
			s.logf("upload inserted")
		}
		s.changed()
	})
	if !ok {
		s.logf("upload ignored: another upload is pending")
		return false
	}
	s.changed()
	return true
}

// Delete removes the selection.
func (s *Session) Delete() int {
	n := s.Toolbar.Delete()
	if n > 0 {
		s.logf("deleted %d objects", n)
		s.changed()
	}
	return n
}

// ApplyTemplate applies a preset of the session kind.
func (s *Session) ApplyTemplate(name string) error {
	p, err := template.Apply(s.Surface, s.Kind, name)
	if err != nil {
		return err
	}
	s.logf("template %s", p.Name)
	s.changed()
	return nil
}

// ApplyFilter filters every image.
func (s *Session) ApplyFilter(name string) (int, error) {
	n, err := s.Panel.ApplyFilter(name)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logf("filter %s on %d images", name, n)
		s.changed()
	}
	return n, nil
}

// ApplyScheme applies a colour scheme.
func (s *Session) ApplyScheme(name string) error {
	if err := s.Panel.ApplyScheme(name); err != nil {
		return err
	}
	s.logf("scheme %s", name)
	s.changed()
	return nil
}

// ApplySizePreset switches the session to kind and resizes the canvas.
func (s *Session) ApplySizePreset(kind output.Kind) {
	s.Kind = kind
	s.Panel.ApplySizePreset(kind)
	sz := kind.Size()
	s.logf("size %s %dx%d", kind, sz.X, sz.Y)
	s.changed()
}

// SelectAt selects the topmost object under the canvas point, or clears the
// selection on a miss.
func (s *Session) SelectAt(x, y int) canvas.Object {
	obj := s.Surface.ObjectAt(x, y)
	if obj == nil {
		s.Surface.Discard()
	} else {
		s.Surface.SetActive(obj)
	}
	s.changed()
	return obj
}

// MoveActive shifts every active object.
func (s *Session) MoveActive(dx, dy float64) {
	active := s.Surface.ActiveObjects()
	if len(active) == 0 {
		return
	}
	for _, obj := range active {
		x, y := obj.Position()
		obj.SetPosition(x+dx, y+dy)
	}
	s.Surface.Render()
	s.changed()
}

// ExportPNG writes the canvas as PNG.
func (s *Session) ExportPNG(w io.Writer) error {
	if err := s.Toolbar.Export(w); err != nil {
		s.logf("export: %v", err)
		return err
	}
	return nil
}

// ExportPDF writes the canvas as a one page PDF.
func (s *Session) ExportPDF(w io.Writer) error {
	if err := s.Toolbar.ExportPDF(w); err != nil {
		s.logf("export pdf: %v", err)
		return err
	}
	return nil
}

// ExportFile writes a timestamped PNG into the save directory.
func (s *Session) ExportFile() (string, error) {
	path, err := s.Toolbar.ExportFile(s.saveDir)
	if err != nil {
		s.logf("export: %v", err)
		return "", err
	}
	s.logf("exported %s", path)
	return path, nil
}
