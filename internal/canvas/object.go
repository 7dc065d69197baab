package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/example/thumbforge/internal/render"
)

// Object is a drawable placed on a Surface. It is implemented only by *Text,
// *Image and *Rect; callers switch on the concrete type.
type Object interface {
	// Position returns the anchor point in canvas pixels.
	Position() (x, y float64)
	// SetPosition moves the anchor point.
	SetPosition(x, y float64)
	drawable()
}

// Anchor selects what an object's coordinate refers to on one axis.
type Anchor int

const (
	// AnchorStart means the coordinate is the left or top edge.
	AnchorStart Anchor = iota
	// AnchorCenter means the coordinate is the middle of the box.
	AnchorCenter
)

// Origin holds the anchor per axis.
type Origin struct {
	X, Y Anchor
}

// Align re-exports the rasterizer's line alignment.
type Align = render.Align

const (
	AlignLeft   = render.AlignLeft
	AlignCenter = render.AlignCenter
)

// Text is an editable text block.
type Text struct {
	X, Y     float64
	Content  string
	FontSize float64
	Fill     color.RGBA
	Bold     bool
	Align    Align
	Origin   Origin
}

// Image is a bitmap scaled uniformly by Scale. Filtered, when set, is drawn
// in place of Source; Filter names the filter that produced it.
type Image struct {
	X, Y     float64
	Source   image.Image
	Filtered image.Image
	Filter   string
	Scale    float64
}

// Gradient is a vertical two-stop fill.
type Gradient struct {
	Top, Bottom color.RGBA
}

// Rect is a filled rectangle. A non-nil Gradient replaces Fill.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Fill          color.RGBA
	Gradient      *Gradient
	Origin        Origin
}

func (t *Text) Position() (float64, float64) { return t.X, t.Y }
func (t *Text) SetPosition(x, y float64) { t.X, t.Y = x, y }
func (*Text) drawable() {}
func (i *Image) Position() (float64, float64) { return i.X, i.Y }
func (i *Image) SetPosition(x, y float64) { i.X, i.Y = x, y }
func (*Image) drawable() {}
func (r *Rect) Position() (float64, float64) { return r.X, r.Y }
func (r *Rect) SetPosition(x, y float64) { r.X, r.Y = x, y }
func (*Rect) drawable() {}

// Pixels returns the bitmap that should be drawn.
func (i *Image) Pixels() image.Image {
	if i.Filtered != nil {
		return i.Filtered
	}
	return i.Source
}

// Size returns the displayed width and height.
func (i *Image) Size() (float64, float64) {
	if i.Source == nil {
		return 0, 0
	}
	b := i.Source.Bounds()
	scale := i.Scale
	if scale <= 0 {
		scale = 1
	}
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}

// Bounds returns the box an object covers in canvas pixels.
func Bounds(obj Object) image.Rectangle {
	switch o := obj.(type) {
	case *Text:
		w, h, err := render.MeasureText(o.Content, o.FontSize, o.Bold)
		if err != nil {
			return image.Rectangle{}
		}
		return box(o.X, o.Y, float64(w), float64(h), o.Origin)
	case *Image:
		w, h := o.Size()
		return box(o.X, o.Y, w, h, Origin{})
	case *Rect:
		return box(o.X, o.Y, o.Width, o.Height, o.Origin)
	default:
		return image.Rectangle{}
	}
}

func box(x, y, w, h float64, origin Origin) image.Rectangle {
	if origin.X == AnchorCenter {
		x -= w / 2
	}
	if origin.Y == AnchorCenter {
		y -= h / 2
	}
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	return image.Rect(x0, y0, x0+int(math.Round(w)), y0+int(math.Round(h)))
}
