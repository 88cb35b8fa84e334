package doubles

// Stub answers with a value chosen purely from its argument.
//
// Configure it with On before handing it to the code under test. An argument with no
// configured answer gets the default.
type Stub[A comparable, R any] struct {
	def     R
	answers map[A]R
}

// NewStub returns a stub whose every answer is def until On says otherwise.
func NewStub[A comparable, R any](def R) *Stub[A, R] {
	return &Stub[A, R]{def: def, answers: make(map[A]R)}
}

// On makes the stub answer ret for arg and returns the stub for chaining.
func (s *Stub[A, R]) On(arg A, ret R) *Stub[A, R] {
	s.answers[arg] = ret
	return s
}

// Respond returns the configured answer for arg, or the default.
func (s *Stub[A, R]) Respond(arg A) R {
	if r, ok := s.answers[arg]; ok {
		return r
	}
	return s.def
}

// Default returns the answer used for unconfigured arguments.
func (s *Stub[A, R]) Default() R { return s.def }
