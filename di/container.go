package di

import (
	"reflect"
	"sort"
)

// DependencyKey identifies a capability stored in a Container.
//
// Keys are typically defined as package-level constants to avoid typos.
//
// Example:
//
//	const (
//	  KeyLife    di.DependencyKey = "life"
//	  KeyGuesses di.DependencyKey = "guesses"
//	)
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// Builder collects capabilities before a Container is built.
//
// Provide calls are chainable; the first error is kept and reported by Build.
type Builder struct {
	items map[DependencyKey]any
	err   error
	built bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{items: make(map[DependencyKey]any)}
}

// Provide stores val under key and returns the builder for chaining.
//
// It records:
//   - NilDependencyError if val is nil (including typed nil pointers)
//   - DuplicateKeyError if key was already provided
//   - ErrBuilt if Build was already called
func (b *Builder) Provide(key DependencyKey, val any) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case b.built:
		b.err = ErrBuilt
	case isNil(val):
		b.err = NilDependencyError{Key: key}
	default:
		if _, exists := b.items[key]; exists {
			b.err = DuplicateKeyError{Key: key}
			return b
		}
		b.items[key] = val
	}
	return b
}

// Build freezes the builder into a Container.
//
// The builder cannot be reused afterwards.
func (b *Builder) Build() (*Container, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	return &Container{items: b.items}, nil
}

// MustBuild is Build for composition roots and tests where wiring mistakes should fail fast.
func (b *Builder) MustBuild() *Container {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// Container is an immutable set of capabilities keyed by DependencyKey.
//
// Call sites should extract the capabilities they need and pass those on, rather than
// holding the whole container.
type Container struct {
	items map[DependencyKey]any
}

// Has reports whether a capability exists for key (regardless of type).
func (c *Container) Has(key DependencyKey) bool {
	if c == nil {
		return false
	}
	_, ok := c.items[key]
	return ok
}

// Len returns the number of capabilities.
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Keys returns the provided keys in sorted order.
func (c *Container) Keys() []DependencyKey {
	if c == nil {
		return nil
	}
	keys := make([]DependencyKey, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAny returns the raw stored capability without type assertions.
func (c *Container) GetAny(key DependencyKey) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.items[key]
	return v, ok
}

// Override returns a new container where key maps to val.
//
// The receiver is not modified. Only keys that were already provided can be replaced,
// so the capability set stays the same.
func (c *Container) Override(key DependencyKey, val any) (*Container, error) {
	if c == nil {
		return nil, ErrNilContainer
	}
	if _, ok := c.items[key]; !ok {
		return nil, MissingDependencyError{Key: key}
	}
	if isNil(val) {
		return nil, NilDependencyError{Key: key}
	}
	cp := make(map[DependencyKey]any, len(c.items))
	for k, v := range c.items {
		cp[k] = v
	}
	cp[key] = val
	return &Container{items: cp}, nil
}

// Get returns the capability under key as D.
//
// D is usually an interface; ok is false if the key is missing or the stored value
// does not satisfy D.
func Get[D any](c *Container, key DependencyKey) (D, bool) {
	var zero D
	raw, ok := c.GetAny(key)
	if !ok {
		return zero, false
	}
	d, ok := raw.(D)
	if !ok {
		return zero, false
	}
	return d, true
}

// TryGet returns the capability under key as D.
//
// It returns:
//   - MissingDependencyError if the key is not present
//   - WrongTypeDependencyError if the key exists but does not satisfy D
func TryGet[D any](c *Container, key DependencyKey) (D, error) {
	var zero D
	raw, ok := c.GetAny(key)
	if !ok {
		return zero, MissingDependencyError{Key: key}
	}
	d, ok := raw.(D)
	if !ok {
		return zero, WrongTypeDependencyError{
			Key:     key,
			GotType: reflect.TypeOf(raw).String(),
		}
	}
	return d, nil
}

// MustGet returns the capability under key as D or panics with the TryGet error.
func MustGet[D any](c *Container, key DependencyKey) D {
	d, err := TryGet[D](c, key)
	if err != nil {
		panic(err)
	}
	return d
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
