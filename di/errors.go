package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilContainer is returned when a lookup or override is attempted on a nil container.
	ErrNilContainer = errors.New("di: nil container")

	// ErrBuilt is returned when Provide is called on a builder after Build.
	ErrBuilt = errors.New("di: builder already built")

	// ErrNilTarget is returned when an injector is applied to a nil service or a service
	// with a nil Val.
	ErrNilTarget = errors.New("di: nil target service")
)

// DuplicateKeyError is returned when a capability is provided twice under the same key.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate dependency key "life"
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a dependency key is not present.
//
// It is used by TryGet to distinguish "missing" from "wrong type".
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "life" missing
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a dependency exists but does not satisfy
// the requested type.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "life" has wrong type (*guess.SQLiteStore)
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyError indicates a nil value was provided for a key.
type NilDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyError) Error() string {
	// Example: di: nil dependency for key "life"
	return "di: nil dependency for key " + strconv.Quote(string(e.Key))
}

// NilBindError indicates a nil bind function for a specific key.
//
// This provides key context without using fmt.Errorf.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	// Example: di: nil bind function for key "life"
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}
