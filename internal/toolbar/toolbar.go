// Package toolbar implements the editor commands: adding text, uploading an
// image, deleting the selection and exporting the result.
package toolbar

import (
	"errors"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/example/thumbforge/internal/canvas"
)

// Defaults for new text blocks.
const (
	NewTextContent = "Enter text"
	NewTextSize    = 40
	NewTextX       = 50
	NewTextY       = 50
)

// ErrNoSurface is returned by exports when the toolbar has no surface.
var ErrNoSurface = errors.New("no surface")

// Dispatcher runs fn on the editor's event loop.
type Dispatcher interface {
	Post(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Post(fn func()) { f(fn) }

// Toolbar issues commands against one surface.
type Toolbar struct {
	surface   *canvas.Surface
	uploading atomic.Bool
	now       func() time.Time
}

// Option configures a Toolbar.
type Option func(*Toolbar)

// WithClock overrides the clock used to name exported files.
func WithClock(now func() time.Time) Option {
	return func(t *Toolbar) { t.now = now }
}

// New returns a toolbar for s.
func New(s *canvas.Surface, opts ...Option) *Toolbar {
	t := &Toolbar{surface: s, now: time.Now}
	for _, o := range opts {
		o(t)
	}
	return t
}

// AddText inserts a default text block and selects it.
func (t *Toolbar) AddText() *canvas.Text {
	if t.surface == nil {
		return nil
	}
	txt := &canvas.Text{
		X:        NewTextX,
		Y:        NewTextY,
		Content:  NewTextContent,
		FontSize: NewTextSize,
		Fill:     color.RGBA{0, 0, 0, 255},
	}
	t.surface.Add(txt)
	t.surface.SetActive(txt)
	return txt
}

// InsertImage replaces any image on the surface with img, scaled to fit
// and centred, and selects it.
func (t *Toolbar) InsertImage(img image.Image) *canvas.Image {
	if t.surface == nil || img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	w, h := t.surface.Size()
	scale, left, top := canvas.FitScale(w, h, b.Dx(), b.Dy())

	var old []canvas.Object
	for _, obj := range t.surface.Objects() {
		if _, ok := obj.(*canvas.Image); ok {
			old = append(old, obj)
		}
	}
	if len(old) > 0 {
		t.surface.Remove(old...)
	}
	obj := &canvas.Image{X: left, Y: top, Source: img, Scale: scale}
	t.surface.Add(obj)
	t.surface.SetActive(obj)
	return obj
}

// Delete removes every active object. Without a selection it does nothing.
func (t *Toolbar) Delete() int {
	if t.surface == nil {
		return 0
	}
	active := t.surface.ActiveObjects()
	if len(active) == 0 {
		return 0
	}
	t.surface.Remove(active...)
	t.surface.Discard()
	return len(active)
}

// Uploading reports whether an upload is pending.
func (t *Toolbar) Uploading() bool { return t.uploading.Load() }
