package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Clear paints the whole of dst with col, replacing existing pixels.
func Clear(dst *image.RGBA, col color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect composites col over r. Translucent colours blend with what is
// already in dst.
func FillRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// FillGradient composites a vertical two-stop gradient over r.
func FillGradient(dst *image.RGBA, r image.Rectangle, top, bottom color.RGBA) {
	clip := r.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	h := r.Dy()
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y-r.Min.Y) / float64(h-1)
		}
		row := image.Rect(clip.Min.X, y, clip.Max.X, y+1)
		draw.Draw(dst, row, image.NewUniform(lerp(top, bottom, t)), image.Point{}, draw.Over)
	}
}

// DrawScaled scales src into r and composites it over dst.
func DrawScaled(dst *image.RGBA, r image.Rectangle, src image.Image) {
	if src == nil || r.Empty() || !r.Overlaps(dst.Bounds()) {
		return
	}
	xdraw.CatmullRom.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}

// StrokeRect draws the outline of r with the given thickness, used for
// selection handles in the editor window.
func StrokeRect(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	if thick < 1 {
		thick = 1
	}
	u := image.NewUniform(col)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
		image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
		image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), u, image.Point{}, draw.Src)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
