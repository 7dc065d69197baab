package template

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/example/thumbforge/internal/canvas"
	"github.com/example/thumbforge/internal/output"
)

func TestForLists(t *testing.T) {
	want := map[output.Kind][]string{
		output.KindYouTube: {"plain", "title", "howto"},
		output.KindNote:    {"plain", "article", "dark"},
	}
	for k, names := range want {
		got := For(k)
		if len(got) != len(names) {
			t.Fatalf("%s: %d presets", k, len(got))
		}
		for i, p := range got {
			if p.Name != names[i] {
				t.Errorf("%s[%d] = %s, want %s", k, i, p.Name, names[i])
			}
		}
	}
	if len(All()) != 6 {
		t.Fatalf("all: %d", len(All()))
	}
}

func TestApplyResizesAndReplaces(t *testing.T) {
	s := canvas.New(1280, 720)
	s.Add(&canvas.Rect{Width: 5, Height: 5})
	stale := &canvas.Text{Content: "old", FontSize: 20}
	s.Add(stale)
	s.SetActive(stale)

	p, err := Apply(s, output.KindNote, "dark")
	if err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 1280 || h != 670 {
		t.Fatalf("size %dx%d", w, h)
	}
	if s.Background() != p.Background || s.Background() != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("background %+v", s.Background())
	}
	if s.Contains(stale) || s.Active() != nil {
		t.Fatal("old objects kept")
	}
	objs := s.Objects()
	if len(objs) != 2 {
		t.Fatalf("objects %d", len(objs))
	}
	first := objs[0].(*canvas.Text)
	if first.Content != "Title" || first.FontSize != 72 || !first.Bold || first.Y != 280 {
		t.Fatalf("title %+v", first)
	}
}

func TestApplyReturnsFreshObjects(t *testing.T) {
	a := canvas.New(1, 1)
	b := canvas.New(1, 1)
	if _, err := Apply(a, output.KindYouTube, "title"); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(b, output.KindYouTube, "title"); err != nil {
		t.Fatal(err)
	}
	a.Objects()[0].(*canvas.Text).Content = "changed"
	if b.Objects()[0].(*canvas.Text).Content != "Main Title" {
		t.Fatal("presets share objects between surfaces")
	}
}

func TestPlainClearsObjects(t *testing.T) {
	s := canvas.New(1280, 670)
	s.Add(&canvas.Rect{Width: 5, Height: 5})
	if _, err := Apply(s, output.KindYouTube, "plain"); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatal("plain left objects")
	}
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Fatalf("size %dx%d", w, h)
	}
}

func TestArticleGradientCoversCanvas(t *testing.T) {
	s := canvas.New(10, 10)
	if _, err := Apply(s, output.KindNote, "article"); err != nil {
		t.Fatal(err)
	}
	r, ok := s.Objects()[0].(*canvas.Rect)
	if !ok || r.Gradient == nil {
		t.Fatal("expected gradient rect")
	}
	if canvas.Bounds(r) != s.Frame().Bounds() {
		t.Fatalf("gradient bounds %v", canvas.Bounds(r))
	}
	frame := s.Render()
	if top := frame.RGBAAt(0, 0); top != (color.RGBA{0xf0, 0xf9, 0xff, 0xff}) {
		t.Fatalf("top %+v", top)
	}
	if bottom := frame.RGBAAt(0, 669); bottom != (color.RGBA{0xe6, 0xf7, 0xff, 0xff}) {
		t.Fatalf("bottom %+v", bottom)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup(output.KindNote, "howto"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func near(a, b int) bool { return a-b <= 2 && b-a <= 2 }

func TestPresetObjectPlacement(t *testing.T) {
	type want struct {
		x, y     float64
		centredY bool
	}
	cases := []struct {
		kind output.Kind
		name string
		want []want
	}{
		{output.KindYouTube, "title", []want{{640, 260, false}, {640, 360, false}}},
		{output.KindYouTube, "howto", []want{{640, 360, true}, {640, 360, true}}},
		{output.KindNote, "article", []want{{640, 335, true}, {640, 335, true}}},
		{output.KindNote, "dark", []want{{640, 280, false}, {640, 390, false}}},
	}
	for _, c := range cases {
		s := canvas.New(1, 1)
		if _, err := Apply(s, c.kind, c.name); err != nil {
			t.Fatal(err)
		}
		objs := s.Objects()
		if len(objs) != len(c.want) {
			t.Fatalf("%s/%s: %d objects", c.kind, c.name, len(objs))
		}
		for i, w := range c.want {
			b := canvas.Bounds(objs[i])
			if b.Empty() {
				t.Fatalf("%s/%s[%d]: empty bounds", c.kind, c.name, i)
			}
			if _, full := objs[i].(*canvas.Rect); full && c.name == "article" {
				if b != s.Frame().Bounds() {
					t.Errorf("article backdrop %v", b)
				}
				continue
			}
			if cx := (b.Min.X + b.Max.X) / 2; !near(cx, int(w.x)) {
				t.Errorf("%s/%s[%d]: centre x %d, want %v (bounds %v)", c.kind, c.name, i, cx, w.x, b)
			}
			if w.centredY {
				if cy := (b.Min.Y + b.Max.Y) / 2; !near(cy, int(w.y)) {
					t.Errorf("%s/%s[%d]: centre y %d, want %v (bounds %v)", c.kind, c.name, i, cy, w.y, b)
				}
			} else if b.Min.Y != int(w.y) {
				t.Errorf("%s/%s[%d]: top %d, want %v (bounds %v)", c.kind, c.name, i, b.Min.Y, w.y, b)
			}
		}
	}
}

func TestHowToBannerBlendsOverBackground(t *testing.T) {
	s := canvas.New(1, 1)
	if _, err := Apply(s, output.KindYouTube, "howto"); err != nil {
		t.Fatal(err)
	}
	if b := canvas.Bounds(s.Objects()[0]); b != image.Rect(140, 285, 1140, 435) {
		t.Fatalf("banner bounds %v", b)
	}
	got := s.Render().RGBAAt(150, 300)
	// rgba(0,102,204,0.8) over #e6f7ff.
	if !near(int(got.R), 46) || !near(int(got.G), 131) || !near(int(got.B), 214) || got.A != 255 {
		t.Fatalf("banner pixel %+v", got)
	}
}
