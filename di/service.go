package di

// Service wires capabilities into the typed fields of one concrete value.
//
// Val is the value being wired. Deps records every bound capability by key, so the
// wiring can be inspected or turned into a Container afterwards.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor and initializing the dependency bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the wired value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector mutates a Service in-place and returns an error if wiring fails.
//
// Injectors are applied via (*Service[T]).With or WithAll.
type Injector[T any] func(*Service[T]) error

// With applies a single injector to the Service.
//
// If inj is nil, With is a no-op and returns (s, nil).
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies multiple injectors in order.
//
// It stops at the first error and returns that error.
func (s *Service[T]) WithAll(deps ...Injector[T]) (*Service[T], error) {
	for _, inj := range deps {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting builds an Injector that binds dep into the target under key.
//
// D is usually the capability interface, so bind assigns it to a field of that
// interface type and no assertion happens later.
//
// The returned injector fails with:
//   - ErrNilTarget if the service (or its Val) is nil
//   - NilDependencyError if dep is nil (including typed nil pointers)
//   - NilBindError if bind is nil
//   - DuplicateKeyError if key was already bound
func Injecting[T any, D any](key DependencyKey, dep D, bind func(target *T, dependency D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if isNil(dep) {
			return NilDependencyError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep
		bind(s.Val, dep)
		return nil
	}
}

// Has reports whether a dependency was bound under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// Container returns an immutable Container holding every bound dependency.
//
// Later wiring on s does not affect the returned Container.
func (s *Service[T]) Container() *Container {
	items := make(map[DependencyKey]any)
	if s != nil {
		for k, v := range s.Deps {
			items[k] = v
		}
	}
	return &Container{items: items}
}
