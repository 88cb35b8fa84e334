// Package oracle shows how to keep a generic structure's type parameters from spreading
// into every signature that uses it.
//
// Oracle is generic over two capabilities so tests can plug in doubles without boxing.
// Spelling out [C life.Service, A Announcer] on every downstream function would make
// each new capability a change to all of them. Handle is the one interface those
// functions depend on instead; every Oracle satisfies it whatever its type arguments
// are, so adding a third capability only touches Oracle and its Handle methods.
//
// The price: a test of a Handle-based function has to build a whole Oracle, even when
// only one capability is exercised. A container (package app) lets a test supply just
// the capability it needs.
package oracle

import "github.com/sghaida/bddkit/life"

// Announcer turns a check result into text.
type Announcer interface {
	Announce(correct bool) string
}

// Cheer is the default Announcer.
type Cheer struct{}

// Announce implements Announcer.
func (Cheer) Announce(correct bool) string {
	if correct {
		return life.Happy
	}
	return life.Sad
}

// Plain is a terse Announcer.
type Plain struct{}

// Announce implements Announcer.
func (Plain) Announce(correct bool) string {
	if correct {
		return "correct"
	}
	return "wrong"
}

// Oracle answers guesses with a checker and an announcer.
type Oracle[C life.Service, A Announcer] struct {
	checker   C
	announcer A
}

// New returns an Oracle using the default Cheer announcer.
func New[C life.Service](checker C) *Oracle[C, Cheer] {
	return &Oracle[C, Cheer]{checker: checker}
}

// WithAnnouncer returns an Oracle using both given implementations.
func WithAnnouncer[C life.Service, A Announcer](checker C, announcer A) *Oracle[C, A] {
	return &Oracle[C, A]{checker: checker, announcer: announcer}
}

// Handle is the facade downstream code depends on instead of Oracle's type parameters.
type Handle interface {
	Checker() life.Service
	Announcer() Announcer
}

var _ Handle = (*Oracle[life.Life, Cheer])(nil)

// Checker implements Handle.
func (o *Oracle[C, A]) Checker() life.Service { return o.checker }

// Announcer implements Handle.
func (o *Oracle[C, A]) Announcer() Announcer { return o.announcer }

// Concrete returns the checker and announcer with their static types, for code that
// knows them.
func (o *Oracle[C, A]) Concrete() (C, A) { return o.checker, o.announcer }

// Consult answers n through any Handle.
func Consult(h Handle, n int) string {
	return h.Announcer().Announce(h.Checker().Check(n))
}

// ConsultAll answers every guess, passing the handle along rather than unpacking it.
func ConsultAll(h Handle, ns ...int) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, Consult(h, n))
	}
	return out
}

// UseOracle is Consult written against the type parameters directly. Every caller has
// to repeat [C life.Service, A Announcer], and a new capability on Oracle changes this
// signature and all of theirs.
func UseOracle[C life.Service, A Announcer](o *Oracle[C, A], n int) string {
	return o.announcer.Announce(o.checker.Check(n))
}
