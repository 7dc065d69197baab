package canvas

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/example/thumbforge/internal/render"
)

// Surface owns the object list of one editor and rasterizes it. It is not
// safe for concurrent use; the editor drives it from a single event loop.
type Surface struct {
	width, height int
	background    color.RGBA

	objects []Object
	active  []Object

	observers []*subscription
	nextSub   int

	frame   *image.RGBA
	renders int
}

type subscription struct {
	id int
	o  Observer
}

// Option configures a Surface during creation.
type Option func(*Surface)

// WithBackground sets the initial background colour.
func WithBackground(c color.RGBA) Option { return func(s *Surface) { s.background = c } }

// New creates a surface of the given size with a white background.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		width:      width,
		height:     height,
		background: color.RGBA{255, 255, 255, 255},
	}
	for _, o := range opts {
		o(s)
	}
	if s.width < 1 {
		s.width = 1
	}
	if s.height < 1 {
		s.height = 1
	}
	return s
}

// Size returns the drawing area in pixels.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize changes the drawing area and re-renders. Non-positive sizes are
// ignored.
func (s *Surface) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.width, s.height = width, height
	s.Render()
}

// Background returns the current background colour.
func (s *Surface) Background() color.RGBA { return s.background }

// SetBackground changes the background colour and re-renders.
func (s *Surface) SetBackground(c color.RGBA) {
	s.background = c
	s.Render()
}

// Objects returns the objects in paint order.
func (s *Surface) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len reports the number of objects.
func (s *Surface) Len() int { return len(s.objects) }

// Contains reports whether obj is on the surface.
func (s *Surface) Contains(obj Object) bool {
	return indexOf(s.objects, obj) >= 0
}

// Add appends objects and re-renders.
func (s *Surface) Add(objs ...Object) {
	for _, o := range objs {
		if o == nil || s.Contains(o) {
			continue
		}
		s.objects = append(s.objects, o)
	}
	s.Render()
}

// Remove deletes the matching objects. Removing an active object drops it
// from the selection.
func (s *Surface) Remove(objs ...Object) {
	removedActive := false
	for _, o := range objs {
		if i := indexOf(s.objects, o); i >= 0 {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
		}
		if i := indexOf(s.active, o); i >= 0 {
			s.active = append(s.active[:i], s.active[i+1:]...)
			removedActive = true
		}
	}
	if removedActive {
		if len(s.active) == 0 {
			s.emitCleared()
		} else {
			s.emitUpdated(s.active[0])
		}
	}
	s.Render()
}

// Clear removes every object and the selection. The background is kept.
func (s *Surface) Clear() {
	s.objects = nil
	s.Discard()
	s.Render()
}

// SetActive replaces the active set. Objects not on the surface are ignored.
// An empty set is equivalent to Discard.
func (s *Surface) SetActive(objs ...Object) {
	var next []Object
	for _, o := range objs {
		if s.Contains(o) && indexOf(next, o) < 0 {
			next = append(next, o)
		}
	}
	if len(next) == 0 {
		s.Discard()
		return
	}
	hadActive := len(s.active) > 0
	s.active = next
	if hadActive {
		s.emitUpdated(next[0])
	} else {
		s.emitCreated(next[0])
	}
}

// Discard clears the active set.
func (s *Surface) Discard() {
	if len(s.active) == 0 {
		return
	}
	s.active = nil
	s.emitCleared()
}

// Active returns the primary active object, or nil.
func (s *Surface) Active() Object {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[0]
}

// ActiveObjects returns every active object.
func (s *Surface) ActiveObjects() []Object {
	out := make([]Object, len(s.active))
	copy(out, s.active)
	return out
}

// ObjectAt returns the topmost object whose bounds contain (x, y).
func (s *Surface) ObjectAt(x, y int) Object {
	p := image.Pt(x, y)
	for i := len(s.objects) - 1; i >= 0; i-- {
		if p.In(Bounds(s.objects[i])) {
			return s.objects[i]
		}
	}
	return nil
}

// Subscribe registers o for selection notifications. The returned function
// removes the registration.
func (s *Surface) Subscribe(o Observer) func() {
	s.nextSub++
	sub := &subscription{id: s.nextSub, o: o}
	s.observers = append(s.observers, sub)
	return func() {
		for i, existing := range s.observers {
			if existing.id == sub.id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Render rasterizes the background and every object into the frame buffer
// and returns it. Calling it again without mutations yields identical pixels.
func (s *Surface) Render() *image.RGBA {
	bounds := image.Rect(0, 0, s.width, s.height)
	if s.frame == nil || s.frame.Bounds() != bounds {
		s.frame = image.NewRGBA(bounds)
	}
	render.Clear(s.frame, s.background)
	for _, obj := range s.objects {
		s.draw(obj)
	}
	s.renders++
	return s.frame
}

// Frame returns the most recently rendered frame without re-rendering.
func (s *Surface) Frame() *image.RGBA {
	if s.frame == nil {
		return s.Render()
	}
	return s.frame
}

// Renders reports how many times Render has run.
func (s *Surface) Renders() int { return s.renders }

func (s *Surface) draw(obj Object) {
	r := Bounds(obj)
	switch o := obj.(type) {
	case *Text:
		if err := render.DrawText(s.frame, r.Min.X, r.Min.Y, o.Content, o.Fill, o.FontSize, o.Bold, o.Align); err != nil {
			log.Printf("render text: %v", err)
		}
	case *Image:
		render.DrawScaled(s.frame, r, o.Pixels())
	case *Rect:
		if o.Gradient != nil {
			render.FillGradient(s.frame, r, o.Gradient.Top, o.Gradient.Bottom)
		} else {
			render.FillRect(s.frame, r, o.Fill)
		}
	}
}

func (s *Surface) emitCreated(obj Object) {
	for _, sub := range s.snapshot() {
		sub.o.SelectionCreated(obj)
	}
}

func (s *Surface) emitUpdated(obj Object) {
	for _, sub := range s.snapshot() {
		sub.o.SelectionUpdated(obj)
	}
}

func (s *Surface) emitCleared() {
	for _, sub := range s.snapshot() {
		sub.o.SelectionCleared()
	}
}

func (s *Surface) snapshot() []*subscription {
	out := make([]*subscription, len(s.observers))
	copy(out, s.observers)
	return out
}

func indexOf(list []Object, obj Object) int {
	for i, o := range list {
		if o == obj {
			return i
		}
	}
	return -1
}

// FitScale returns the uniform scale that fits a w×h bitmap inside a W×H
// canvas without cropping, and the top-left offset that centres it.
func FitScale(canvasW, canvasH, w, h int) (scale, left, top float64) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0
	}
	scale = math.Min(float64(canvasW)/float64(w), float64(canvasH)/float64(h))
	left = (float64(canvasW) - float64(w)*scale) / 2
	top = (float64(canvasH) - float64(h)*scale) / 2
	return scale, left, top
}
