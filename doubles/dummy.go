package doubles

import (
	"errors"
	"strconv"
)

// ErrUnimplemented marks a call that reached a dummy.
var ErrUnimplemented = errors.New("doubles: unimplemented")

// UnimplementedError names the dummy method that was called.
type UnimplementedError struct{ Method string }

// Error implements the error interface.
func (e UnimplementedError) Error() string {
	// Example: doubles: unimplemented: "life.Service.Check" called on a dummy
	return ErrUnimplemented.Error() + ": " + strconv.Quote(e.Method) + " called on a dummy"
}

// Unwrap lets errors.Is match ErrUnimplemented.
func (e UnimplementedError) Unwrap() error { return ErrUnimplemented }

// Unimplemented panics with an UnimplementedError for method.
//
// Dummy methods call it so a test that wrongly assumed a dependency is unused fails
// loudly at the call site.
func Unimplemented(method string) {
	panic(UnimplementedError{Method: method})
}
