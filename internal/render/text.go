package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LineSpacing is the multiplier applied to the font size to get the line
// advance of multi-line text.
const LineSpacing = 1.16

// Align positions each line of text inside its bounding box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

type faceKey struct {
	size float64
	bold bool
}

var (
	parseOnce   sync.Once
	parseErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font

	faces sync.Map // map[faceKey]font.Face
)

func parseFonts() {
	regularFont, parseErr = opentype.Parse(goregular.TTF)
	if parseErr != nil {
		parseErr = fmt.Errorf("parse regular font: %w", parseErr)
		return
	}
	boldFont, parseErr = opentype.Parse(gobold.TTF)
	if parseErr != nil {
		parseErr = fmt.Errorf("parse bold font: %w", parseErr)
	}
}

// Face returns a cached face for the given point size and weight.
func Face(size float64, bold bool) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	parseOnce.Do(parseFonts)
	if parseErr != nil {
		return nil, parseErr
	}
	key := faceKey{size: size, bold: bold}
	if face, ok := faces.Load(key); ok {
		return face.(font.Face), nil
	}
	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	actual, _ := faces.LoadOrStore(key, face)
	return actual.(font.Face), nil
}

// LineHeight returns the vertical advance of one line at size.
func LineHeight(size float64) int {
	return int(math.Ceil(size * LineSpacing))
}

// MeasureText returns the bounding box of text, which may span several lines.
func MeasureText(text string, size float64, bold bool) (width, height int, err error) {
	face, err := Face(size, bold)
	if err != nil {
		return 0, 0, err
	}
	d := &font.Drawer{Face: face}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if w := d.MeasureString(line).Ceil(); w > width {
			width = w
		}
	}
	height = LineHeight(size) * len(lines)
	return width, height, nil
}

// DrawText renders text with the top-left corner of its bounding box at
// (x, y). Each line is aligned inside the box according to align.
func DrawText(dst *image.RGBA, x, y int, text string, col color.Color, size float64, bold bool, align Align) error {
	face, err := Face(size, bold)
	if err != nil {
		return err
	}
	boxWidth, _, err := MeasureText(text, size, bold)
	if err != nil {
		return err
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	glyphHeight := ascent + metrics.Descent.Ceil()
	lh := LineHeight(size)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	for i, line := range strings.Split(text, "\n") {
		lx := x
		if align == AlignCenter {
			lx += (boxWidth - d.MeasureString(line).Ceil()) / 2
		}
		baseline := y + i*lh + (lh-glyphHeight)/2 + ascent
		d.Dot = fixed.P(lx, baseline)
		d.DrawString(line)
	}
	return nil
}
