package factory

import (
	"reflect"

	"github.com/dansamargiu/FactoryContainer/internal/ancestry"
)

// Resolve materialises an instance of interface I from the container,
// recursively constructing and injecting its dependencies.
//
// Resolve never returns an error. It yields the absent marker, the zero
// value of I, when I has no binding, when the dependency graph under I
// loops back on itself, or when a constructor on the chain reported an
// error. Use TryResolve to learn which.
//
// A dependency that is simply unregistered does not fail the resolve: the
// containing constructor receives the zero value for that parameter and
// decides for itself whether to accept it.
//
// A type-bound I produces a fresh instance on every call; an
// instance-bound I produces the identical handle on every call.
//
// The absent marker is a true nil interface. A constructor that returns a
// typed nil pointer without an error still counts as producing a value:
// the resolved interface wraps that nil pointer and does not compare equal
// to nil.
func Resolve[I any](c *Container) I {
	var zero I

	path := ancestry.NewPath()
	out := c.resolve(reflect.TypeOf((*I)(nil)).Elem(), path)
	if out == nil || path.Err() != nil {
		return zero
	}

	// The single downcast from the erased recipe output back to I.
	v, ok := out.(I)
	if !ok {
		return zero
	}
	return v
}

// TryResolve is Resolve with an explanation. When the resolve fails it
// returns a ResolutionError wrapping the cause: ErrNotRegistered, a
// CycleError, or the ConstructorError reported along the chain.
func TryResolve[I any](c *Container) (I, error) {
	var zero I
	iface := reflect.TypeOf((*I)(nil)).Elem()

	path := ancestry.NewPath()
	out := c.resolve(iface, path)
	if err := path.Err(); err != nil {
		return zero, ResolutionError{ServiceType: iface, Cause: err}
	}
	if out == nil {
		return zero, ResolutionError{ServiceType: iface, Cause: ErrNotRegistered}
	}

	v, ok := out.(I)
	if !ok {
		return zero, ResolutionError{
			ServiceType: iface,
			Cause: TypeMismatchError{
				Expected: iface,
				Actual:   reflect.TypeOf(out),
				Context:  "type assertion",
			},
		}
	}
	return v, nil
}

// MustResolve is like TryResolve but panics when resolution fails. Useful
// in application wiring where a missing binding is unrecoverable.
func MustResolve[I any](c *Container) I {
	v, err := TryResolve[I](c)
	if err != nil {
		panic(err)
	}
	return v
}
