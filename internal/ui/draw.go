package ui

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/panel"
	"github.com/example/thumbforge/internal/render"
)

const (
	lineHeight   = 16
	fieldLines   = 6
	columns      = 2
	panelPadding = 8
)

// placeButtons assigns rectangles for the current layout.
func (w *Window) placeButtons() {
	y := w.layout.Toolbar.Min.Y + panelPadding
	for _, b := range w.toolButtons {
		b.SetRect(image.Rect(w.layout.Toolbar.Min.X+4, y, w.layout.Toolbar.Max.X-4, y+buttonHeight))
		y += buttonHeight + 4
	}

	p := w.layout.Panel
	colW := (p.Dx() - panelPadding*(columns+1)) / columns
	y = p.Min.Y + panelPadding + fieldLines*lineHeight + panelPadding
	for i := range w.sections {
		sec := &w.sections[i]
		sec.top = y
		y += lineHeight + 2
		for j := sec.start; j < sec.end; j++ {
			col := (j - sec.start) % columns
			if col == 0 && j > sec.start {
				y += buttonHeight + 4
			}
			x := p.Min.X + panelPadding + col*(colW+panelPadding)
			w.panelButtons[j].SetRect(image.Rect(x, y, x+colW, y+buttonHeight))
		}
		y += buttonHeight + panelPadding
	}
}

func (w *Window) buttonState(b *CacheButton) ButtonState {
	a := b.Action()
	switch {
	case a == ActionPaste && w.uploadBusy():
		return StateDisabled
	case a == w.pressed && a != "":
		return StatePressed
	case a == w.hover && a != "":
		return StateHover
	}
	return StateDefault
}

// drawFrame paints the whole window into dst.
func (w *Window) drawFrame(dst *image.RGBA) {
	th := w.theme
	l := w.layout
	draw.Draw(dst, l.Window, image.NewUniform(th.Background), image.Point{}, draw.Src)

	frame := w.sess.Surface.Frame()
	cw, ch := w.sess.Surface.Size()
	if zoom, r := l.Fit(cw, ch); zoom > 0 {
		xdraw.ApproxBiLinear.Scale(dst, r, frame, frame.Bounds(), draw.Src, nil)
		render.StrokeRect(dst, r.Inset(-1), th.CanvasBorder, 1)
		for _, obj := range w.sess.Surface.ActiveObjects() {
			sel := l.ToWindow(canvas.Bounds(obj), cw, ch).Inset(-2)
			render.StrokeRect(dst, sel.Intersect(r.Inset(-4)), th.Selection, 2)
		}
	}

	draw.Draw(dst, l.Toolbar, image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)
	for _, b := range w.toolButtons {
		b.Draw(dst, th, w.buttonState(b))
	}

	w.drawPanel(dst)
	w.drawStatus(dst)

	if msg := w.Message(); msg != "" {
		width := labelWidth(msg)
		x := l.View.Min.X + (l.View.Dx()-width)/2
		y := l.View.Min.Y + l.View.Dy()/2
		box := image.Rect(x-8, y-16, x+width+8, y+8)
		draw.Draw(dst, box, image.NewUniform(th.PanelBackground), image.Point{}, draw.Src)
		render.StrokeRect(dst, box, th.ButtonBorder, 2)
		drawLabel(dst, x, y, msg, th.Foreground)
	}
}

func (w *Window) drawPanel(dst *image.RGBA) {
	th := w.theme
	p := w.layout.Panel
	draw.Draw(dst, p, image.NewUniform(th.PanelBackground), image.Point{}, draw.Src)

	f := w.sess.Panel.Fields()
	mode := w.sess.Panel.Mode().String()
	if w.typing {
		mode = "typing"
	}
	text := f.Text
	if r := []rune(text); len(r) > 24 {
		text = string(r[:24]) + "..."
	}
	cw, ch := w.sess.Surface.Size()
	lines := []string{
		fmt.Sprintf("%s %dx%d", w.sess.Kind.Label(), cw, ch),
		"Mode: " + mode,
		fmt.Sprintf("Text: %q", text),
		fmt.Sprintf("Size: %.0f", f.FontSize),
		"Colour: " + panel.Hex(f.FontColor),
		"Background: " + panel.Hex(f.Background),
	}
	y := p.Min.Y + panelPadding + 12
	for _, line := range lines {
		drawLabel(dst, p.Min.X+panelPadding, y, line, th.Foreground)
		y += lineHeight
	}
	for _, sec := range w.sections {
		drawLabel(dst, p.Min.X+panelPadding, sec.top+12, sec.title, th.Foreground)
		for _, b := range w.panelButtons[sec.start:sec.end] {
			b.Draw(dst, th, w.buttonState(b))
		}
	}
}

func (w *Window) drawStatus(dst *image.RGBA) {
	th := w.theme
	s := w.layout.Status
	draw.Draw(dst, s, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	x := s.Min.X + 4
	for _, sc := range statusShortcuts {
		if x+labelWidth(sc.Label) > s.Max.X {
			break
		}
		drawLabel(dst, x, s.Min.Y+16, sc.Label, th.StatusText)
		x += labelWidth(sc.Label) + 12
	}
	if w.uploadBusy() {
		drawLabel(dst, s.Max.X-labelWidth("uploading...")-4, s.Min.Y+16, "uploading...", th.StatusText)
	}
}
