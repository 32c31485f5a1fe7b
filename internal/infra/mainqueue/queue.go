// Package mainqueue provides the serial execution context that owns
// presentation state. Work submitted to a Queue runs on one goroutine in
// submission order.
package mainqueue

import (
	"context"
	"log/slog"
	"sync"

	"qrstudio/internal/domain/service"

	"go.uber.org/fx"
)

// Queue is a single goroutine FIFO executor
type Queue struct {
	logger *slog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending []func()
	started bool
	stopped bool
	done    chan struct{}
}

var _ service.Dispatcher = (*Queue)(nil)

// New creates a queue; call Start before dispatching
func New(logger *slog.Logger) *Queue {
	q := &Queue{
		logger: logger,
		done:   make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Params holds dependencies for the queue, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewDispatcher creates a queue bound to the application lifecycle
func NewDispatcher(params Params) *Queue {
	q := New(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			q.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return q.Stop(ctx)
		},
	})

	return q
}

// Start launches the worker goroutine. Calling it again has no effect.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.stopped {
		return
	}
	q.started = true

	go q.run()
}

// Stop drains the work already queued, then ends the worker. Dispatches made
// after Stop are dropped.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()

		return nil
	}
	q.stopped = true
	started := q.started
	q.cond.Broadcast()
	q.mu.Unlock()

	if !started {
		close(q.done)

		return nil
	}

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch schedules fn and returns immediately
func (q *Queue) Dispatch(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		q.logger.Debug("Main queue stopped, dropping work")

		return
	}
	q.pending = append(q.pending, fn)
	q.cond.Signal()
}

// Sync runs fn on the queue and waits for it. If the queue is stopped fn is
// dropped and Sync returns at once.
func (q *Queue) Sync(fn func()) {
	finished := make(chan struct{})

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		q.logger.Debug("Main queue stopped, dropping work")

		return
	}
	q.pending = append(q.pending, func() {
		defer close(finished)
		fn()
	})
	q.cond.Signal()
	q.mu.Unlock()

	select {
	case <-finished:
	case <-q.done:
	}
}

func (q *Queue) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.stopped {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()

			return
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.execute(fn)
	}
}

func (q *Queue) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Recovered panic on main queue", slog.Any("panic", r))
		}
	}()

	fn()
}

// Module provides the main queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewDispatcher,
		func(q *Queue) service.Dispatcher { return q },
	),
)
