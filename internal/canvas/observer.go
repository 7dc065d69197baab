package canvas

// Observer receives selection notifications from a Surface.
type Observer interface {
	// SelectionCreated fires when an object becomes active on a surface that
	// had no active objects.
	SelectionCreated(obj Object)
	// SelectionUpdated fires when the active set changes but stays non-empty.
	SelectionUpdated(obj Object)
	// SelectionCleared fires when the active set becomes empty.
	SelectionCleared()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Created func(Object)
	Updated func(Object)
	Cleared func()
}

var _ Observer = ObserverFuncs{}

func (f ObserverFuncs) SelectionCreated(obj Object) {
	if f.Created != nil {
		f.Created(obj)
	}
}

func (f ObserverFuncs) SelectionUpdated(obj Object) {
	if f.Updated != nil {
		f.Updated(obj)
	}
}

func (f ObserverFuncs) SelectionCleared() {
	if f.Cleared != nil {
		f.Cleared()
	}
}
