package factory

import (
	"reflect"

	"github.com/dansamargiu/FactoryContainer/internal/ancestry"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// RegisterType binds interface I to a constructor of a concrete
// implementation. ctor must be a non-variadic function of the form
//
//	func(D1, ..., Dn) T
//	func(D1, ..., Dn) (T, error)
//
// where T is assignable to I. The parameter list D1..Dn is the ordered
// dependency declaration: on every resolve of I, each Di is resolved
// through the same container, left to right, and the results are passed to
// ctor in that order. A dependency that resolves to the absent marker is
// passed as the zero value of Di; it is the constructor's prerogative to
// accept or reject it.
//
// Go generics cannot relate two type parameters, so the check that T
// implements I happens here rather than at compile time. A violation is a
// programmer error and is reported as a RegistrationError wrapping a
// TypeMismatchError.
//
// Registration replaces any previous binding for I.
func RegisterType[I any](c *Container, ctor any) error {
	iface := reflect.TypeOf((*I)(nil)).Elem()

	if ctor == nil {
		return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorNil}
	}

	fn := reflect.ValueOf(ctor)
	fnType := fn.Type()

	if fnType.Kind() != reflect.Func {
		return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorInvalid}
	}
	if fn.IsNil() {
		return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorNil}
	}
	if fnType.IsVariadic() {
		return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorInvalid}
	}

	hasErr := false
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errType {
			return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorInvalid}
		}
		hasErr = true
	default:
		return RegistrationError{ServiceType: iface, Operation: "register-type", Cause: ErrConstructorInvalid}
	}

	concrete := fnType.Out(0)
	if !concrete.AssignableTo(iface) {
		return RegistrationError{
			ServiceType: iface,
			Operation:   "register-type",
			Cause: TypeMismatchError{
				Expected: iface,
				Actual:   concrete,
				Context:  "interface implementation",
			},
		}
	}

	deps := make([]reflect.Type, fnType.NumIn())
	for i := range deps {
		deps[i] = fnType.In(i)
	}

	c.recipes.Set(iface, func(path *ancestry.Path) any {
		args := make([]reflect.Value, len(deps))
		for i, dep := range deps {
			if resolved := c.resolve(dep, path); resolved != nil {
				args[i] = reflect.ValueOf(resolved)
			} else {
				// Absent dependency: the constructor sees the zero value.
				args[i] = reflect.Zero(dep)
			}
		}

		out := fn.Call(args)
		if hasErr && !out[1].IsNil() {
			path.Fail(ConstructorError{Constructor: fnType, Cause: out[1].Interface().(error)})
			return nil
		}
		return out[0].Interface()
	})

	return nil
}

// RegisterInstance binds interface I to a single pre-built instance. Every
// resolve of I yields the identical handle, giving singleton semantics.
// The compiler enforces that instance implements I. A nil instance,
// including a typed nil pointer, is rejected with ErrInstanceNil.
//
// Registration replaces any previous binding for I. The container keeps
// the instance alive until it is unregistered, replaced, or the container
// is released.
func RegisterInstance[I any](c *Container, instance I) error {
	iface := reflect.TypeOf((*I)(nil)).Elem()

	if any(instance) == nil {
		return RegistrationError{ServiceType: iface, Operation: "register-instance", Cause: ErrInstanceNil}
	}

	// A typed nil, such as (*T)(nil) bound as I, is rejected like a nil
	// interface value.
	switch v := reflect.ValueOf(instance); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return RegistrationError{ServiceType: iface, Operation: "register-instance", Cause: ErrInstanceNil}
		}
	}

	c.recipes.Set(iface, func(*ancestry.Path) any {
		return instance
	})

	return nil
}

// Unregister removes the binding for interface I. Unregistering an
// interface that was never registered is a no-op. Subsequent resolves of I
// yield the absent marker.
func Unregister[I any](c *Container) {
	c.recipes.Remove(reflect.TypeOf((*I)(nil)).Elem())
}

// IsRegistered reports whether interface I currently has a binding.
func IsRegistered[I any](c *Container) bool {
	return c.recipes.Contains(reflect.TypeOf((*I)(nil)).Elem())
}
