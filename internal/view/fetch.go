package view

import (
	"context"
	"sync"
)

// Outcome is a delivered fetch result.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Runner serializes data loads for a view: starting a new fetch cancels
// the previous one, and only the latest-initiated fetch may deliver its
// outcome. A superseded fetch that races to completion is discarded, as
// is anything in flight when Close is called.
type Runner[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	out    chan Outcome[T]
}

func NewRunner[T any]() *Runner[T] {
	return &Runner[T]{out: make(chan Outcome[T], 1)}
}

// Start launches fetch, cancelling any prior in-flight fetch first.
func (r *Runner[T]) Start(ctx context.Context, fetch func(context.Context) (T, error)) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	go func() {
		defer cancel()
		v, err := fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		if seq != r.seq {
			// A newer fetch started; this outcome is stale.
			return
		}
		select {
		case <-r.out:
		default:
		}
		r.out <- Outcome[T]{Value: v, Err: err}
	}()
}

// Outcomes delivers at most the latest fetch's result.
func (r *Runner[T]) Outcomes() <-chan Outcome[T] {
	return r.out
}

// Close cancels any in-flight fetch and bars it from delivering.
func (r *Runner[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
