package editor

import (
	"context"
	"sync"
)

// Loop is a single consumer queue of editor mutations. Any goroutine may
// Post; only the goroutine running Run or Drain executes the functions.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	wakeFn func()
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues fn.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	wakeFn := l.wakeFn
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
	if wakeFn != nil {
		wakeFn()
	}
}

// OnPost registers fn to be called after every Post. A host with its own
// event loop uses it to schedule Drain instead of calling Run.
func (l *Loop) OnPost(fn func()) {
	l.mu.Lock()
	l.wakeFn = fn
	l.mu.Unlock()
}

// Pending reports the number of queued functions.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs queued functions, including ones they post, until the queue is
// empty. It returns how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
			n++
		}
	}
}

// Run executes posted functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
