package ui

import (
	"image"
	"math"
)

const (
	toolbarWidth = 72
	panelWidth   = 220
	bottomHeight = 24
	buttonHeight = 24
	margin       = 16
)

// Layout splits the window into the tool column, the canvas view, the
// property panel and the shortcut bar.
type Layout struct {
	Window  image.Rectangle
	Toolbar image.Rectangle
	Panel   image.Rectangle
	Status  image.Rectangle
	View    image.Rectangle
}

// ComputeLayout returns the regions for a window of the given size.
func ComputeLayout(width, height int) Layout {
	win := image.Rect(0, 0, width, height)
	body := image.Rect(0, 0, width, max(0, height-bottomHeight))
	l := Layout{
		Window:  win,
		Toolbar: image.Rect(0, 0, min(toolbarWidth, width), body.Max.Y),
		Panel:   image.Rect(max(0, width-panelWidth), 0, width, body.Max.Y),
		Status:  image.Rect(0, body.Max.Y, width, height),
	}
	l.View = image.Rect(l.Toolbar.Max.X, 0, max(l.Toolbar.Max.X, l.Panel.Min.X), body.Max.Y)
	return l
}

// Fit returns the zoom and destination rectangle that show a canvas of
// the given size centred inside the view with a small margin.
func (l Layout) Fit(canvasW, canvasH int) (float64, image.Rectangle) {
	inner := l.View.Inset(margin)
	if inner.Empty() || canvasW <= 0 || canvasH <= 0 {
		return 0, image.Rectangle{}
	}
	zoom := math.Min(float64(inner.Dx())/float64(canvasW), float64(inner.Dy())/float64(canvasH))
	w := int(float64(canvasW) * zoom)
	h := int(float64(canvasH) * zoom)
	x := inner.Min.X + (inner.Dx()-w)/2
	y := inner.Min.Y + (inner.Dy()-h)/2
	return zoom, image.Rect(x, y, x+w, y+h)
}

// ToCanvas maps a window point into canvas pixels. ok is false outside the
// displayed canvas.
func (l Layout) ToCanvas(p image.Point, canvasW, canvasH int) (image.Point, bool) {
	zoom, dst := l.Fit(canvasW, canvasH)
	if zoom == 0 || !p.In(dst) {
		return image.Point{}, false
	}
	return image.Pt(
		int(float64(p.X-dst.Min.X)/zoom),
		int(float64(p.Y-dst.Min.Y)/zoom),
	), true
}

// ToWindow maps a canvas rectangle into window pixels.
func (l Layout) ToWindow(r image.Rectangle, canvasW, canvasH int) image.Rectangle {
	zoom, dst := l.Fit(canvasW, canvasH)
	return image.Rect(
		dst.Min.X+int(float64(r.Min.X)*zoom),
		dst.Min.Y+int(float64(r.Min.Y)*zoom),
		dst.Min.X+int(math.Ceil(float64(r.Max.X)*zoom)),
		dst.Min.Y+int(math.Ceil(float64(r.Max.Y)*zoom)),
	)
}
