package selection

import (
	"testing"

	"github.com/example/thumbforge/internal/canvas"
)

func TestFollowsSurface(t *testing.T) {
	s := canvas.New(100, 100)
	st := New()
	st.Attach(s)

	var seen []canvas.Object
	st.Watch(func(o canvas.Object) { seen = append(seen, o) })

	txt := &canvas.Text{Content: "a", FontSize: 20}
	r := &canvas.Rect{Width: 5, Height: 5}
	s.Add(txt, r)

	s.SetActive(txt)
	if st.Current() != txt {
		t.Fatalf("current %v, want text", st.Current())
	}
	if got, ok := st.Text(); !ok || got != txt {
		t.Fatal("expected text selection")
	}

	s.SetActive(r)
	if st.Current() != r {
		t.Fatal("expected rect after update")
	}
	if _, ok := st.Text(); ok {
		t.Fatal("rect reported as text")
	}

	s.Remove(r)
	if st.Current() != nil {
		t.Fatal("selection outlived removed object")
	}
	if len(seen) != 3 || seen[2] != nil {
		t.Fatalf("watch calls %v", seen)
	}
}

func TestAttachPicksUpActive(t *testing.T) {
	s := canvas.New(10, 10)
	r := &canvas.Rect{Width: 1, Height: 1}
	s.Add(r)
	s.SetActive(r)

	st := New()
	st.Attach(s)
	if st.Current() != r {
		t.Fatal("expected existing active object")
	}
}

func TestDetach(t *testing.T) {
	s := canvas.New(10, 10)
	r := &canvas.Rect{Width: 1, Height: 1}
	s.Add(r)
	st := New()
	st.Attach(s)
	st.Detach()
	s.SetActive(r)
	if st.Current() != nil {
		t.Fatal("detached state still follows surface")
	}
}

func TestReattachSwitchesSurface(t *testing.T) {
	a := canvas.New(10, 10)
	b := canvas.New(10, 10)
	ra := &canvas.Rect{Width: 1, Height: 1}
	rb := &canvas.Rect{Width: 1, Height: 1}
	a.Add(ra)
	b.Add(rb)

	st := New()
	st.Attach(a)
	st.Attach(b)
	a.SetActive(ra)
	if st.Current() != nil {
		t.Fatal("state still listening to old surface")
	}
	b.SetActive(rb)
	if st.Current() != rb {
		t.Fatal("state not listening to new surface")
	}
}
