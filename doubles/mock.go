package doubles

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnexpectedCalls is wrapped by the predicates below when the recorded calls do not
// match the expectation.
var ErrUnexpectedCalls = errors.New("doubles: unexpected calls")

// Expectation decides whether a recorded argument log is a correct interaction.
type Expectation[A any] func(args []A) error

// Mock is a Spy that carries its own definition of a correct interaction.
//
// Tests call Verify instead of inspecting Args, so the assertion logic lives with the
// double rather than in every test body.
type Mock[A, R any] struct {
	*Spy[A, R]
	expect []Expectation[A]
}

// NewMock returns a mock answering with respond and checked by every expectation.
func NewMock[A, R any](respond func(A) R, expect ...Expectation[A]) *Mock[A, R] {
	return &Mock[A, R]{Spy: NewSpy(respond), expect: expect}
}

// Expect adds expectations and returns the mock for chaining.
func (m *Mock[A, R]) Expect(expect ...Expectation[A]) *Mock[A, R] {
	m.expect = append(m.expect, expect...)
	return m
}

// Verify runs every expectation against the recorded calls and joins their errors.
func (m *Mock[A, R]) Verify() error {
	args := m.Args()
	var errs []error
	for _, e := range m.expect {
		if err := e(args); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Verified reports whether Verify passes.
func (m *Mock[A, R]) Verified() bool { return m.Verify() == nil }

// CalledTimes expects exactly n calls.
func CalledTimes[A any](n int) Expectation[A] {
	return func(args []A) error {
		if len(args) != n {
			return fmt.Errorf("%w: want %d calls, got %d", ErrUnexpectedCalls, n, len(args))
		}
		return nil
	}
}

// NeverCalled expects no calls at all.
func NeverCalled[A any]() Expectation[A] { return CalledTimes[A](0) }

// CalledWith expects exactly the given arguments, in order.
func CalledWith[A any](want ...A) Expectation[A] {
	return func(args []A) error {
		if len(args) != len(want) {
			return fmt.Errorf("%w: want args %v, got %v", ErrUnexpectedCalls, want, args)
		}
		for i := range want {
			if !reflect.DeepEqual(args[i], want[i]) {
				return fmt.Errorf("%w: call %d: want %v, got %v", ErrUnexpectedCalls, i, want[i], args[i])
			}
		}
		return nil
	}
}

// EveryCall expects pred to hold for each recorded argument.
func EveryCall[A any](pred func(A) bool, what string) Expectation[A] {
	return func(args []A) error {
		for i, a := range args {
			if !pred(a) {
				return fmt.Errorf("%w: call %d with %v is not %s", ErrUnexpectedCalls, i, a, what)
			}
		}
		return nil
	}
}
