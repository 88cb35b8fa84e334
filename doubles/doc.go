// Package doubles provides generic building blocks for hand-written test doubles.
//
// Doubles are ordered by how much behavior they carry:
//
//   - Dummy: satisfies an interface but must never be called (Unimplemented)
//   - Stub: answers from a fixed table, records nothing (Stub)
//   - Spy: answers and records every argument plus a call count (Spy)
//   - Mock: a spy that also knows what a correct interaction looks like (Mock)
//   - Fake: a small but real implementation (see guess/guesstest)
//
// Use the weakest double that lets the test say something meaningful: a dummy when the
// dependency is not used, a stub when only the output matters, a spy or mock when the
// interaction matters, and a fake only for stateful dependencies reused across many tests.
//
// Spy and Mock are safe for concurrent use. Stub is configured before the test runs
// and only read afterwards.
package doubles
