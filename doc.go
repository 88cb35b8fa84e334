// Package bddkit collects small, explicit patterns for writing behavior-driven tests in Go.
//
// The repository is organized around three independent ideas:
//
//   - capability contracts: production code depends on a one-method interface
//     (life.Service) and tests substitute a double for it
//   - dependency containers: every capability lives in one immutable container (di, app)
//     and call sites pull out only the accessor they need
//   - facades: one interface (oracle.Handle) hides the bound set of a generic structure
//     so downstream signatures do not change when the bounds do
//
// Test doubles come in five strengths (doubles, life/lifetest, guess/guesstest):
// dummy, stub, spy, mock and fake. Pick the weakest one that makes the test meaningful.
//
// Package bddkit See subpackages:
//   - life, guess: capabilities and their production implementations
//   - doubles: generic dummy/stub/spy/mock building blocks
//   - di, app: the dependency container and its typed accessors
//   - oracle: the facade pattern
//   - cmd/bddkit: a CLI wiring all of the above
package bddkit
