// Package life wraps a slow function behind a one-method capability so callers can be
// tested without paying for it.
//
// Production code never calls IsMeaningOfLife directly. It goes through Run, which only
// knows about the Service interface; tests hand Run a double from lifetest instead.
package life

import "time"

// Answer is the number IsMeaningOfLife accepts.
const Answer = 42

// DefaultDelay is how long Life takes to answer when no delay is configured.
const DefaultDelay = 500 * time.Millisecond

const (
	// Happy is the verdict for a correct guess.
	Happy = "yay!"
	// Sad is the verdict for a wrong guess.
	Sad = ":frown:"
)

// IsMeaningOfLife sleeps for delay and reports whether n is the answer.
//
// It stands in for an expensive call we do not own (a third-party API, a long
// computation). Tests exercising it directly are slow.
func IsMeaningOfLife(n int, delay time.Duration) bool {
	time.Sleep(delay)
	return n == Answer
}

// Service is the capability production code depends on.
type Service interface {
	Check(n int) bool
}

// Life is the production Service.
type Life struct {
	// Delay overrides DefaultDelay when positive.
	Delay time.Duration
}

var _ Service = Life{}

// Check implements Service by calling IsMeaningOfLife.
func (l Life) Check(n int) bool {
	d := l.Delay
	if d <= 0 {
		d = DefaultDelay
	}
	return IsMeaningOfLife(n, d)
}

// Run asks svc about n and turns the answer into a verdict.
func Run(svc Service, n int) string {
	if svc.Check(n) {
		return Happy
	}
	return Sad
}
