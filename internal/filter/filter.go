// Package filter implements the named image filters offered by the editor.
package filter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/example/thumbforge/internal/canvas"
)

// Filter names.
const (
	None      = "none"
	Greyscale = "greyscale"
	Sepia     = "sepia"
	Contrast  = "contrast"
	Blur      = "blur"
)

// ErrUnknownFilter is returned for names outside Names.
var ErrUnknownFilter = errors.New("unknown filter")

// Names lists the filters in menu order.
func Names() []string {
	return []string{None, Greyscale, Sepia, Contrast, Blur}
}

// Normalize maps aliases and case variants to a filter name.
func Normalize(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", None:
		return None, nil
	case Greyscale, "grayscale", "grey", "gray":
		return Greyscale, nil
	case Sepia, Contrast, Blur:
		return n, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFilter, name)
}

// Apply returns a filtered copy of img. The none filter returns img itself.
func Apply(img image.Image, name string) (image.Image, error) {
	n, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}
	switch n {
	case Greyscale:
		return imaging.Grayscale(img), nil
	case Sepia:
		return imaging.AdjustFunc(img, sepia), nil
	case Contrast:
		return imaging.AdjustContrast(img, 25), nil
	case Blur:
		return imaging.Blur(img, blurSigma(img.Bounds())), nil
	default:
		return img, nil
	}
}

// ApplyAll filters every image object on s. Earlier filters are dropped
// first so the result never stacks; none only drops them. It reports how
// many images it reset or filtered and renders when that is non-zero. A
// surface without images is left untouched.
func ApplyAll(s *canvas.Surface, name string) (int, error) {
	n, err := Normalize(name)
	if err != nil {
		return 0, err
	}
	if s == nil {
		return 0, nil
	}
	count := 0
	for _, obj := range s.Objects() {
		img, ok := obj.(*canvas.Image)
		if !ok || img.Source == nil {
			continue
		}
		img.Filtered = nil
		img.Filter = ""
		if n != None {
			out, err := Apply(img.Source, n)
			if err != nil {
				return count, err
			}
			img.Filtered = out
			img.Filter = n
		}
		count++
	}
	if count > 0 {
		s.Render()
	}
	return count, nil
}

func sepia(c color.NRGBA) color.NRGBA {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return color.NRGBA{
		R: clamp(0.393*r + 0.769*g + 0.189*b),
		G: clamp(0.349*r + 0.686*g + 0.168*b),
		B: clamp(0.272*r + 0.534*g + 0.131*b),
		A: c.A,
	}
}

func clamp(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(math.Round(v))
}

// blurSigma scales a 0.25 blur strength to the image so small and large
// uploads look alike.
func blurSigma(b image.Rectangle) float64 {
	short := b.Dx()
	if b.Dy() < short {
		short = b.Dy()
	}
	sigma := 0.25 * float64(short) / 40
	if sigma < 0.5 {
		sigma = 0.5
	}
	return sigma
}
