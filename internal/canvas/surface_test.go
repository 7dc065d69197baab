package canvas

import (
	"image"
	"image/color"
	"testing"
)

type recorder struct {
	events []string
	last   Object
}

func (r *recorder) SelectionCreated(obj Object) {
	r.events = append(r.events, "created")
	r.last = obj
}

func (r *recorder) SelectionUpdated(obj Object) {
	r.events = append(r.events, "updated")
	r.last = obj
}

func (r *recorder) SelectionCleared() {
	r.events = append(r.events, "cleared")
	r.last = nil
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestSelectionEvents(t *testing.T) {
	s := New(100, 100)
	rec := &recorder{}
	s.Subscribe(rec)

	a := &Rect{Width: 10, Height: 10}
	b := &Rect{X: 50, Width: 10, Height: 10}
	s.Add(a, b)

	s.SetActive(a)
	s.SetActive(b)
	s.Discard()
	s.Discard()

	want := []string{"created", "updated", "cleared"}
	if len(rec.events) != len(want) {
		t.Fatalf("events %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Fatalf("events %v, want %v", rec.events, want)
		}
	}
}

func TestSetActiveIgnoresForeignObjects(t *testing.T) {
	s := New(100, 100)
	rec := &recorder{}
	s.Subscribe(rec)
	s.SetActive(&Rect{Width: 1, Height: 1})
	if s.Active() != nil || len(rec.events) != 0 {
		t.Fatalf("foreign object became active: %v %v", s.Active(), rec.events)
	}
}

func TestRemoveActiveClearsSelection(t *testing.T) {
	s := New(100, 100)
	rec := &recorder{}
	s.Subscribe(rec)
	txt := &Text{Content: "a", FontSize: 20}
	s.Add(txt)
	s.SetActive(txt)

	s.Remove(txt)
	if s.Active() != nil {
		t.Fatal("expected no active object")
	}
	if rec.events[len(rec.events)-1] != "cleared" {
		t.Fatalf("expected cleared event, got %v", rec.events)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty surface, got %d objects", s.Len())
	}
}

func TestRemovePartOfMultiSelection(t *testing.T) {
	s := New(100, 100)
	rec := &recorder{}
	s.Subscribe(rec)
	a := &Rect{Width: 1, Height: 1}
	b := &Rect{Width: 1, Height: 1}
	s.Add(a, b)
	s.SetActive(a, b)
	s.Remove(a)
	if s.Active() != b {
		t.Fatalf("expected b to stay active")
	}
	if rec.last != b || rec.events[len(rec.events)-1] != "updated" {
		t.Fatalf("expected updated(b), got %v", rec.events)
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(10, 10)
	rec := &recorder{}
	cancel := s.Subscribe(rec)
	cancel()
	r := &Rect{Width: 1, Height: 1}
	s.Add(r)
	s.SetActive(r)
	if len(rec.events) != 0 {
		t.Fatalf("unsubscribed observer received %v", rec.events)
	}
}

func TestClearKeepsBackground(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	s := New(20, 20, WithBackground(bg))
	s.Add(&Rect{Width: 20, Height: 20, Fill: color.RGBA{255, 0, 0, 255}})
	s.Clear()
	if s.Len() != 0 {
		t.Fatal("clear left objects behind")
	}
	if got := s.Render().RGBAAt(5, 5); got != bg {
		t.Fatalf("pixel %+v, want background %+v", got, bg)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	s := New(64, 32)
	s.Add(&Rect{X: 4, Y: 4, Width: 20, Height: 10, Fill: color.RGBA{0, 0, 255, 200}})
	s.Add(&Text{X: 30, Y: 2, Content: "Hi", FontSize: 16, Fill: color.RGBA{0, 0, 0, 255}})
	first := append([]uint8(nil), s.Render().Pix...)
	second := s.Render().Pix
	if len(first) != len(second) {
		t.Fatal("frame size changed")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel byte %d differs between renders", i)
		}
	}
}

func TestResize(t *testing.T) {
	s := New(1280, 720)
	s.Resize(1280, 670)
	w, h := s.Size()
	if w != 1280 || h != 670 {
		t.Fatalf("size %dx%d", w, h)
	}
	if b := s.Frame().Bounds(); b.Dx() != 1280 || b.Dy() != 670 {
		t.Fatalf("frame bounds %v", b)
	}
	s.Resize(0, 10)
	if w, h := s.Size(); w != 1280 || h != 670 {
		t.Fatalf("invalid resize applied: %dx%d", w, h)
	}
}

func TestObjectAtPrefersTopmost(t *testing.T) {
	s := New(100, 100)
	below := &Rect{X: 0, Y: 0, Width: 50, Height: 50}
	above := &Rect{X: 25, Y: 25, Width: 50, Height: 50}
	s.Add(below, above)
	if got := s.ObjectAt(30, 30); got != above {
		t.Fatalf("expected topmost rect, got %v", got)
	}
	if got := s.ObjectAt(10, 10); got != below {
		t.Fatalf("expected lower rect, got %v", got)
	}
	if got := s.ObjectAt(90, 10); got != nil {
		t.Fatalf("expected miss, got %v", got)
	}
}

func TestBoundsCentredOrigin(t *testing.T) {
	r := &Rect{X: 640, Y: 360, Width: 1000, Height: 150, Origin: Origin{X: AnchorCenter, Y: AnchorCenter}}
	if got, want := Bounds(r), image.Rect(140, 285, 1140, 435); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
}

func TestImageDrawnScaled(t *testing.T) {
	s := New(100, 100, WithBackground(color.RGBA{255, 255, 255, 255}))
	img := &Image{X: 25, Y: 25, Source: solid(10, 10, color.RGBA{255, 0, 0, 255}), Scale: 5}
	s.Add(img)
	if got := Bounds(img); got != image.Rect(25, 25, 75, 75) {
		t.Fatalf("bounds %v", got)
	}
	if got := s.Render().RGBAAt(50, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("centre pixel %+v", got)
	}
	img.Filtered = solid(10, 10, color.RGBA{0, 255, 0, 255})
	if got := s.Render().RGBAAt(50, 50); got != (color.RGBA{0, 255, 0, 255}) {
		t.Fatalf("filtered pixel %+v", got)
	}
}

func TestFitScale(t *testing.T) {
	scale, left, top := FitScale(1280, 720, 2560, 1440)
	if scale != 0.5 || left != 0 || top != 0 {
		t.Fatalf("got %v %v %v", scale, left, top)
	}
	scale, left, top = FitScale(1280, 720, 100, 200)
	if scale != 3.6 {
		t.Fatalf("scale %v", scale)
	}
	if left != (1280-100*3.6)/2 || top != 0 {
		t.Fatalf("offset %v,%v", left, top)
	}
}
