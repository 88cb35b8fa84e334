// Package di provides explicit dependency wiring: an injector for typed fields and a
// small, immutable dependency container.
//
// Service[T] wires capabilities into one concrete value through Injecting and
// WithAll, so the value's fields have their real types and reading them needs no
// assertion. Every binding is also recorded by key and can be viewed as a Container.
//
// A Container maps DependencyKey values to capability implementations. It is
// assembled once through a Builder and is read-only afterwards, so it can be shared
// by any number of goroutines without locking.
//
// Design goals:
//   - Explicit wiring: every capability is provided under a named key.
//   - One instance per key: duplicates and nil values fail at build time.
//   - Identity-stable reads: a key always yields the exact value that was provided.
//   - Test-friendly: Override swaps one capability without touching the original.
//
// Call sites should not keep the container around. Pull out the capability a function
// needs (Get, TryGet, MustGet) and pass that narrow interface on, so changing the
// capability set only touches the code that builds the container.
//
// Notes on performance:
//   - Reads are a map lookup plus a type assertion.
//   - Error paths avoid fmt.Errorf so missing-key checks stay cheap. ResolveAs is the
//     exception: it wraps a recovered registry panic.
//
// Import
//
//	"github.com/sghaida/bddkit/di"
package di
