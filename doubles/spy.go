package doubles

import (
	"sync"
	"sync/atomic"
)

// Spy records every call it receives and answers through respond.
//
// The call counter is atomic and the argument log is guarded by a mutex, so a Spy can
// be shared by goroutines. Args reports arguments in the order the calls acquired the
// lock.
type Spy[A, R any] struct {
	respond func(A) R

	calls atomic.Int64
	mu    sync.Mutex
	args  []A
}

// NewSpy returns a spy that answers with respond. A nil respond answers the zero R.
func NewSpy[A, R any](respond func(A) R) *Spy[A, R] {
	if respond == nil {
		respond = func(A) R {
			var zero R
			return zero
		}
	}
	return &Spy[A, R]{respond: respond}
}

// Call records arg and returns respond(arg).
func (s *Spy[A, R]) Call(arg A) R {
	s.mu.Lock()
	s.args = append(s.args, arg)
	s.calls.Add(1)
	s.mu.Unlock()

	return s.respond(arg)
}

// Calls returns how many times Call ran.
func (s *Spy[A, R]) Calls() int { return int(s.calls.Load()) }

// Args returns a copy of the recorded arguments in call order.
func (s *Spy[A, R]) Args() []A {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]A, len(s.args))
	copy(out, s.args)
	return out
}

// Reset forgets every recorded call.
func (s *Spy[A, R]) Reset() {
	s.mu.Lock()
	s.args = nil
	s.calls.Store(0)
	s.mu.Unlock()
}
