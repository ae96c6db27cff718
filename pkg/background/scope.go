package background

import (
	"context"
	"sync"
)

// Scope - abstract concurrency scope which joins goroutines by meaning.
type Scope struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	scope     sync.WaitGroup
}

// NewScope - concurrency scope builder.
// Returned cancel func expires the scope context and waits until
// all registered members are done.
func NewScope() (scope *Scope, cancel func()) {
	ctx, cancelFunc := context.WithCancel(context.Background())
	s := &Scope{
		ctx:       ctx,
		ctxCancel: cancelFunc,
	}
	return s,
		func() {
			s.ctxCancel()
			s.scope.Wait()
		}
}

// Context - return background context.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Active - reports whether the scope is not cancelled yet.
func (s *Scope) Active() bool {
	return s.ctx.Err() == nil
}

// Go - runs f as a scope member.
func (s *Scope) Go(f func()) {
	s.scope.Add(1)
	go func() {
		defer s.scope.Done()
		f()
	}()
}

// Add - notifies scope to register processes/workers/layers.
// Based on sync.WaitGroup.
func (s *Scope) Add(delta int) {
	s.scope.Add(delta)
}

// Done - notifies scope when process/worker/layer is done.
// Based on sync.WaitGroup.
func (s *Scope) Done() {
	s.scope.Done()
}
