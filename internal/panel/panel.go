// Package panel holds the property editor shown next to the canvas. It edits
// the selected text block and the surface background.
package panel

import (
	"image/color"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/filter"
	"github.com/example/thumbforge/internal/output"
	"github.com/example/thumbforge/internal/selection"
)

// Font size limits and defaults.
const (
	MinFontSize     = 10
	MaxFontSize     = 200
	DefaultFontSize = 40
)

// Mode reports whether a text block is being edited.
type Mode int

const (
	Idle Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "idle"
}

// Fields are the values shown in the panel.
type Fields struct {
	Text       string
	FontSize   float64
	FontColor  color.RGBA
	Background color.RGBA
}

// DefaultFontColor is used while nothing is selected.
var DefaultFontColor = color.RGBA{0, 0, 0, 255}

// Panel is driven by selection changes and user edits.
type Panel struct {
	surface *canvas.Surface
	sel     *selection.State
	mode    Mode
	target  *canvas.Text
	fields  Fields
}

// New builds a panel for s. The panel follows sel; sel may be nil for a
// panel that only edits the background.
func New(s *canvas.Surface, sel *selection.State) *Panel {
	p := &Panel{surface: s, sel: sel}
	p.fields = Fields{FontSize: DefaultFontSize, FontColor: DefaultFontColor}
	if s != nil {
		p.fields.Background = s.Background()
	}
	if sel != nil {
		sel.Watch(p.selected)
		p.selected(sel.Current())
	}
	return p
}

// Mode returns the current state.
func (p *Panel) Mode() Mode { return p.mode }

// Fields returns a copy of the panel values.
func (p *Panel) Fields() Fields {
	f := p.fields
	if p.surface != nil {
		f.Background = p.surface.Background()
	}
	return f
}

// Target returns the text block being edited, or nil.
func (p *Panel) Target() *canvas.Text { return p.target }

func (p *Panel) selected(obj canvas.Object) {
	t, ok := obj.(*canvas.Text)
	if !ok || t == nil {
		p.mode = Idle
		p.target = nil
		p.fields.Text = ""
		p.fields.FontSize = DefaultFontSize
		p.fields.FontColor = DefaultFontColor
		return
	}
	p.mode = Editing
	p.target = t
	p.fields.Text = t.Content
	p.fields.FontSize = t.FontSize
	p.fields.FontColor = t.Fill
}

// SetText updates the text field and the selected block.
func (p *Panel) SetText(s string) {
	if p.surface == nil {
		return
	}
	p.fields.Text = s
	if p.mode == Editing {
		p.target.Content = s
		p.surface.Render()
	}
}

// SetFontSize clamps size to the slider range and applies it.
func (p *Panel) SetFontSize(size float64) {
	if p.surface == nil {
		return
	}
	p.fields.FontSize = ClampFontSize(size)
	if p.mode == Editing {
		p.target.FontSize = p.fields.FontSize
		p.surface.Render()
	}
}

// SetFontColor updates the text colour field and the selected block.
func (p *Panel) SetFontColor(c color.RGBA) {
	if p.surface == nil {
		return
	}
	p.fields.FontColor = c
	if p.mode == Editing {
		p.target.Fill = c
		p.surface.Render()
	}
}

// SetFontColorHex parses s with ParseColor and applies it.
func (p *Panel) SetFontColorHex(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	p.SetFontColor(c)
	return nil
}

// SetBackground changes the surface background whatever the mode.
func (p *Panel) SetBackground(c color.RGBA) {
	if p.surface == nil {
		return
	}
	p.fields.Background = c
	p.surface.SetBackground(c)
}

// SetBackgroundHex parses s with ParseColor and applies it.
func (p *Panel) SetBackgroundHex(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	p.SetBackground(c)
	return nil
}

// ApplyScheme sets the background and recolours every text block.
func (p *Panel) ApplyScheme(name string) error {
	sc, err := LookupScheme(name)
	if err != nil {
		return err
	}
	if p.surface == nil {
		return nil
	}
	for _, obj := range p.surface.Objects() {
		if t, ok := obj.(*canvas.Text); ok {
			t.Fill = sc.Text
		}
	}
	p.fields.FontColor = sc.Text
	p.fields.Background = sc.Background
	p.surface.SetBackground(sc.Background)
	return nil
}

// ApplyFilter filters every image on the surface.
func (p *Panel) ApplyFilter(name string) (int, error) {
	if p.surface == nil {
		if _, err := filter.Normalize(name); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return filter.ApplyAll(p.surface, name)
}

// ApplySizePreset resizes the surface to the output kind.
func (p *Panel) ApplySizePreset(k output.Kind) {
	if p.surface == nil {
		return
	}
	sz := k.Size()
	p.surface.Resize(sz.X, sz.Y)
}

// ClampFontSize limits size to [MinFontSize, MaxFontSize].
func ClampFontSize(size float64) float64 {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}
