// Package template holds the preset layouts offered per output kind.
package template

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/output"
)

// ErrUnknownTemplate is returned when a preset name is not defined for a kind.
var ErrUnknownTemplate = errors.New("unknown template")

// Preset is a named layout.
type Preset struct {
	Name        string
	Kind        output.Kind
	Description string
	Background  color.RGBA
	objects     func(w, h int) []canvas.Object
}

// Apply resizes s to the preset's kind, sets the background and replaces
// every object with fresh copies of the preset objects.
func (p Preset) Apply(s *canvas.Surface) {
	if s == nil {
		return
	}
	sz := p.Kind.Size()
	s.Resize(sz.X, sz.Y)
	s.SetBackground(p.Background)
	s.Clear()
	if p.objects != nil {
		s.Add(p.objects(sz.X, sz.Y)...)
	}
}

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}

	centred = canvas.Origin{X: canvas.AnchorCenter, Y: canvas.AnchorCenter}
	// Y is the top edge.
	centredX = canvas.Origin{X: canvas.AnchorCenter}
)

// nrgba converts a straight-alpha colour to the premultiplied form objects use.
func nrgba(r, g, b, a uint8) color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
}

func title(content string, x, y, size float64, fill color.RGBA, bold bool, origin canvas.Origin) *canvas.Text {
	return &canvas.Text{
		X:        x,
		Y:        y,
		Content:  content,
		FontSize: size,
		Fill:     fill,
		Bold:     bold,
		Align:    canvas.AlignCenter,
		Origin:   origin,
	}
}

var presets = []Preset{
	{
		Name:        "plain",
		Kind:        output.KindYouTube,
		Description: "White background",
		Background:  white,
	},
	{
		Name:        "title",
		Kind:        output.KindYouTube,
		Description: "Title and subtitle on navy",
		Background:  color.RGBA{0x1a, 0x36, 0x5d, 0xff},
		objects: func(w, h int) []canvas.Object {
			return []canvas.Object{
				title("Main Title", 640, 260, 72, white, true, centredX),
				title("Subtitle", 640, 360, 48, color.RGBA{0xf7, 0xfa, 0xfc, 0xff}, false, centredX),
			}
		},
	},
	{
		Name:        "howto",
		Kind:        output.KindYouTube,
		Description: "Banner with a how-to title",
		Background:  color.RGBA{0xe6, 0xf7, 0xff, 0xff},
		objects: func(w, h int) []canvas.Object {
			return []canvas.Object{
				&canvas.Rect{
					X: 640, Y: 360, Width: 1000, Height: 150,
					Fill:   nrgba(0, 102, 204, 204),
					Origin: centred,
				},
				title("How-To Video Title", 640, 360, 64, white, true, centred),
			}
		},
	},
	{
		Name:        "plain",
		Kind:        output.KindNote,
		Description: "White background",
		Background:  white,
	},
	{
		Name:        "article",
		Kind:        output.KindNote,
		Description: "Soft blue gradient with a headline",
		Background:  color.RGBA{0xf0, 0xf9, 0xff, 0xff},
		objects: func(w, h int) []canvas.Object {
			return []canvas.Object{
				&canvas.Rect{
					Width: float64(w), Height: float64(h),
					Gradient: &canvas.Gradient{
						Top:    color.RGBA{0xf0, 0xf9, 0xff, 0xff},
						Bottom: color.RGBA{0xe6, 0xf7, 0xff, 0xff},
					},
				},
				title("Article title goes here", 640, 335, 64, color.RGBA{0x0c, 0x4a, 0x6e, 0xff}, true, centred),
			}
		},
	},
	{
		Name:        "dark",
		Kind:        output.KindNote,
		Description: "White text on black",
		Background:  black,
		objects: func(w, h int) []canvas.Object {
			return []canvas.Object{
				title("Title", 640, 280, 72, white, true, centredX),
				title("Subtitle", 640, 390, 48, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}, false, centredX),
			}
		},
	},
}

// All returns every preset.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// For returns the presets of one kind in gallery order.
func For(k output.Kind) []Preset {
	var out []Preset
	for _, p := range presets {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds a preset by kind and name.
func Lookup(k output.Kind, name string) (Preset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.Kind == k && p.Name == n {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q for %s", ErrUnknownTemplate, name, k)
}

// Apply looks up a preset and applies it to s.
func Apply(s *canvas.Surface, k output.Kind, name string) (Preset, error) {
	p, err := Lookup(k, name)
	if err != nil {
		return Preset{}, err
	}
	p.Apply(s)
	return p, nil
}
