// Package lifetest provides test doubles for life.Service.
package lifetest

import (
	"github.com/sghaida/bddkit/doubles"
	"github.com/sghaida/bddkit/life"
)

var (
	_ life.Service = Dummy{}
	_ life.Service = (*Stub)(nil)
	_ life.Service = (*Spy)(nil)
	_ life.Service = (*Mock)(nil)
	_ life.Service = Fake{}
)

// Dummy fills a life.Service slot that the test expects to stay unused.
type Dummy struct{}

// Check panics: reaching it means the test's assumptions are wrong.
func (Dummy) Check(int) bool {
	doubles.Unimplemented("life.Service.Check")
	return false
}

// Stub answers from a fixed table. The zero answer is wrong.
type Stub struct {
	s *doubles.Stub[int, bool]
}

// NewStub returns a stub that answers wrong for every n.
func NewStub() *Stub {
	return &Stub{s: doubles.NewStub[int, bool](false)}
}

// AlwaysCorrect makes every guess correct.
func (s *Stub) AlwaysCorrect() *Stub {
	s.s = doubles.NewStub[int, bool](true)
	return s
}

// AlwaysWrong makes every guess wrong.
func (s *Stub) AlwaysWrong() *Stub {
	s.s = doubles.NewStub[int, bool](false)
	return s
}

// Answer makes n correct without changing any other answer.
func (s *Stub) Answer(n int) *Stub {
	s.s.On(n, true)
	return s
}

// Check implements life.Service.
func (s *Stub) Check(n int) bool { return s.s.Respond(n) }

// Spy records every guess and answers a fixed verdict.
type Spy struct {
	*doubles.Spy[int, bool]
}

// NewSpy returns a spy answering correct for every n.
func NewSpy(correct bool) *Spy {
	return &Spy{Spy: doubles.NewSpy(func(int) bool { return correct })}
}

// Check implements life.Service.
func (s *Spy) Check(n int) bool { return s.Call(n) }

// Mock is a spy that knows which guesses it should have received.
type Mock struct {
	*doubles.Mock[int, bool]
}

// NewMock returns a mock answering correct for every n and expecting nothing yet.
func NewMock(correct bool) *Mock {
	return &Mock{Mock: doubles.NewMock(func(int) bool { return correct })}
}

// ExpectChecked expects exactly the guesses ns, in order.
func (m *Mock) ExpectChecked(ns ...int) *Mock {
	m.Expect(doubles.CalledWith(ns...))
	return m
}

// ExpectNotChecked expects the service to be left alone.
func (m *Mock) ExpectNotChecked() *Mock {
	m.Expect(doubles.NeverCalled[int]())
	return m
}

// Check implements life.Service.
func (m *Mock) Check(n int) bool { return m.Call(n) }

// Fake is a working life.Service without the delay.
//
// Prefer a Stub in tests of Run: a fake that hard-codes the answer goes stale when
// the real one changes. Fake is for tests that need realistic behavior across many
// guesses.
type Fake struct {
	// Answer is the accepted guess; zero means life.Answer.
	Answer int
}

// Check implements life.Service.
func (f Fake) Check(n int) bool {
	want := f.Answer
	if want == 0 {
		want = life.Answer
	}
	return n == want
}
