package decode

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Pool.Submit after Close.
var ErrClosed = errors.New("decode: pool closed")

// Runner executes decode work. Submit returns once fn has completed, or
// with an error when the work could not be run.
type Runner interface {
	Submit(ctx context.Context, fn func()) error
}

// Sync runs decode work inline on the calling goroutine. It is the
// default and the only choice on constrained hosts.
type Sync struct{}

// Submit runs fn immediately.
func (Sync) Submit(_ context.Context, fn func()) error {
	fn()
	return nil
}

// Pool runs decode work on a fixed set of background workers. Offloading
// is purely a throughput choice: results are identical to Sync.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	// mu guards closed and, read-held, keeps Close from closing the task
	// channel while a Submit is sending on it.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{tasks: make(chan func())}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.tasks {
		fn()
	}
}

// Submit schedules fn on a worker and waits for it to finish.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrClosed
	}

	done := make(chan struct{})
	task := func() {
		defer close(done)
		fn()
	}
	select {
	case p.tasks <- task:
		p.mu.RUnlock()
	case <-ctx.Done():
		p.mu.RUnlock()
		return ctx.Err()
	}
	<-done
	return nil
}

// Close stops the workers. Pending Submit calls complete first.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
