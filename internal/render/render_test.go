package render

import (
	"image"
	"image/color"
	"testing"
)

func TestMeasureTextMultiline(t *testing.T) {
	w1, h1, err := MeasureText("Hello", 40, false)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	w2, h2, err := MeasureText("Hello\nHello", 40, false)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if w1 != w2 {
		t.Errorf("width changed with identical lines: %d vs %d", w1, w2)
	}
	if h2 != 2*h1 {
		t.Errorf("expected two lines to double height, got %d and %d", h1, h2)
	}
	if h1 != LineHeight(40) {
		t.Errorf("single line height %d, want %d", h1, LineHeight(40))
	}
}

func TestBoldIsWider(t *testing.T) {
	regular, _, err := MeasureText("Thumbnail", 48, false)
	if err != nil {
		t.Fatal(err)
	}
	bold, _, err := MeasureText("Thumbnail", 48, true)
	if err != nil {
		t.Fatal(err)
	}
	if bold <= regular {
		t.Errorf("bold width %d should exceed regular width %d", bold, regular)
	}
}

func TestFaceRejectsInvalidSize(t *testing.T) {
	if _, err := Face(0, false); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestDrawTextWritesPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 80))
	Clear(img, color.White)
	if err := DrawText(img, 10, 10, "Hi", color.Black, 40, true, AlignLeft); err != nil {
		t.Fatalf("draw: %v", err)
	}
	dark := 0
	for _, p := range img.Pix {
		if p < 128 {
			dark++
		}
	}
	if dark == 0 {
		t.Fatal("expected text pixels to be drawn")
	}
}

func TestFillRectBlends(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Clear(img, color.RGBA{255, 255, 255, 255})
	FillRect(img, image.Rect(0, 0, 2, 2), color.RGBA{0, 0, 0, 128})
	got := img.RGBAAt(0, 0)
	if got.R < 120 || got.R > 135 {
		t.Errorf("expected half blend, got %+v", got)
	}
	if img.RGBAAt(3, 3) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel outside rect changed: %+v", img.RGBAAt(3, 3))
	}
}

func TestFillGradientEndpoints(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 11))
	top := color.RGBA{0, 0, 0, 255}
	bottom := color.RGBA{200, 100, 50, 255}
	FillGradient(img, img.Bounds(), top, bottom)
	if got := img.RGBAAt(0, 0); got != top {
		t.Errorf("top %+v, want %+v", got, top)
	}
	if got := img.RGBAAt(0, 10); got != bottom {
		t.Errorf("bottom %+v, want %+v", got, bottom)
	}
	if got := img.RGBAAt(1, 5); got.R != 100 {
		t.Errorf("middle %+v", got)
	}
}

func TestDrawScaledFillsTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Clear(src, color.RGBA{255, 0, 0, 255})
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	DrawScaled(dst, image.Rect(10, 10, 30, 30), src)
	if got := dst.RGBAAt(20, 20); got.R != 255 || got.A != 255 {
		t.Errorf("centre %+v", got)
	}
	if got := dst.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("outside target should stay transparent, got %+v", got)
	}
}
