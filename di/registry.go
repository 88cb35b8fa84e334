package di

import (
	"errors"
	"fmt"
	"reflect"
)

// Registry is the read-only lookup view of a Container.
//
// It is intentionally:
// - read-only
// - side effect free
//
// Expected usage:
//
//	val, ok, err := reg.Resolve("life")
type Registry interface {
	Resolve(key DependencyKey) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned by ResolveAs if a registry implementation panics.
var ErrRegistryPanic = errors.New("di: panic during Resolve")

var _ Registry = (*Container)(nil)

// Resolve implements Registry.
//
// A nil container reports ErrNilContainer instead of panicking.
func (c *Container) Resolve(key DependencyKey) (any, bool, error) {
	if c == nil {
		return nil, false, ErrNilContainer
	}
	v, ok := c.items[key]
	return v, ok, nil
}

// ResolveAs resolves key from any Registry and returns it as D.
//
// Besides the TryGet errors it returns ErrNilContainer for a nil registry and wraps
// ErrRegistryPanic when reg panics.
func ResolveAs[D any](reg Registry, key DependencyKey) (d D, err error) {
	if reg == nil {
		return d, ErrNilContainer
	}
	defer func() {
		if rec := recover(); rec != nil {
			var zero D
			d = zero
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	raw, ok, err := reg.Resolve(key)
	if err != nil {
		return d, err
	}
	if !ok {
		return d, MissingDependencyError{Key: key}
	}
	d, ok = raw.(D)
	if !ok {
		return d, WrongTypeDependencyError{Key: key, GotType: typeName(raw)}
	}
	return d, nil
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
