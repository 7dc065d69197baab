package panel

import (
	"fmt"
	"image/color"
	"strings"
)

// Scheme pairs a background with a text colour.
type Scheme struct {
	Name       string
	Background color.RGBA
	Text       color.RGBA
}

var schemes = []Scheme{
	{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0x00, 0x00, 0x00, 0xff}},
	{"black", color.RGBA{0x00, 0x00, 0x00, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"blue", color.RGBA{0x1e, 0x40, 0xaf, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"red", color.RGBA{0xb9, 0x1c, 0x1c, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"green", color.RGBA{0x15, 0x80, 0x3d, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}},
}

// Schemes returns the built-in colour schemes.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// LookupScheme finds a scheme by name, ignoring case.
func LookupScheme(name string) (Scheme, error) {
	for _, s := range schemes {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("unknown scheme %q", name)
}
