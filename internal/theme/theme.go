package theme

import (
	"image/color"
	"reflect"
)

// Theme defines the colours of the editor window chrome. The thumbnail
// itself is never affected.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // behind the canvas
	Foreground color.RGBA // labels

	// Tool column and property panel
	ToolbarBackground     color.RGBA
	PanelBackground       color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonDisabled        color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Canvas view
	CanvasBorder color.RGBA
	Selection    color.RGBA

	// Shortcut bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{235, 235, 235, 255},
		PanelBackground:       color.RGBA{245, 245, 245, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonDisabled:        color.RGBA{225, 225, 225, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CanvasBorder:          color.RGBA{120, 120, 120, 255},
		Selection:             color.RGBA{0, 120, 215, 255},
		StatusBackground:      color.RGBA{200, 200, 200, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
	}
}

// ColorFields returns the colour field names in declaration order.
func ColorFields() []string {
	typ := reflect.TypeOf(Theme{})
	rgba := reflect.TypeOf(color.RGBA{})
	var out []string
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type == rgba {
			out = append(out, typ.Field(i).Name)
		}
	}
	return out
}

// Color returns the named colour field.
func (t *Theme) Color(field string) (color.RGBA, bool) {
	f := reflect.ValueOf(t).Elem().FieldByName(field)
	if !f.IsValid() {
		return color.RGBA{}, false
	}
	c, ok := f.Interface().(color.RGBA)
	return c, ok
}
