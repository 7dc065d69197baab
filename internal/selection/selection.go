// Package selection tracks the object the user is currently working on.
package selection

import "github.com/example/thumbforge/internal/canvas"

// State holds at most one object from a surface. It does not own the object:
// the surface tells it when the object stops being active or is removed.
type State struct {
	current  canvas.Object
	watchers []func(canvas.Object)
	detach   func()
}

var _ canvas.Observer = (*State)(nil)

// New returns an empty State.
func New() *State { return &State{} }

// Attach subscribes the state to s, replacing any earlier surface. The
// current value is reset to whatever s has active.
func (st *State) Attach(s *canvas.Surface) {
	if st.detach != nil {
		st.detach()
		st.detach = nil
	}
	if s == nil {
		st.set(nil)
		return
	}
	st.detach = s.Subscribe(st)
	st.set(s.Active())
}

// Detach stops listening to the surface and forgets the current object.
func (st *State) Detach() {
	if st.detach != nil {
		st.detach()
		st.detach = nil
	}
	st.set(nil)
}

// Current returns the selected object or nil.
func (st *State) Current() canvas.Object { return st.current }

// Text returns the selected object when it is a text block.
func (st *State) Text() (*canvas.Text, bool) {
	t, ok := st.current.(*canvas.Text)
	return t, ok
}

// Watch registers fn to be called with every new value.
func (st *State) Watch(fn func(canvas.Object)) {
	if fn != nil {
		st.watchers = append(st.watchers, fn)
	}
}

func (st *State) SelectionCreated(obj canvas.Object) { st.set(obj) }
func (st *State) SelectionUpdated(obj canvas.Object) { st.set(obj) }
func (st *State) SelectionCleared() { st.set(nil) }

func (st *State) set(obj canvas.Object) {
	st.current = obj
	for _, fn := range st.watchers {
		fn(obj)
	}
}
