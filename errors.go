package factory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// These are base errors that get wrapped in typed errors when returned.
// Match against them with errors.Is.

var (
	// ErrNotRegistered is reported when no recipe exists for the requested
	// interface.
	ErrNotRegistered = errors.New("interface not registered")

	// ErrConstructorNil is reported when RegisterType is given a nil
	// constructor.
	ErrConstructorNil = errors.New("constructor cannot be nil")

	// ErrConstructorInvalid is reported when RegisterType is given a value
	// that is not a usable constructor function.
	ErrConstructorInvalid = errors.New("constructor is not a valid function")

	// ErrInstanceNil is reported when RegisterInstance is given a nil
	// interface value.
	ErrInstanceNil = errors.New("instance cannot be nil")
)

var (
	_ error = RegistrationError{}
	_ error = TypeMismatchError{}
	_ error = ResolutionError{}
	_ error = CycleError{}
	_ error = ConstructorError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// RegistrationError wraps errors during binding registration.
type RegistrationError struct {
	ServiceType reflect.Type
	Operation   string // "register-type", "register-instance"
	Cause       error
}

func (e RegistrationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, formatType(e.ServiceType), e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a constructor result does not satisfy the
// interface it was registered under.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
	Context  string // "interface implementation", "type assertion"
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Context, formatType(e.Expected), formatType(e.Actual))
}

// ResolutionError explains why a top-level TryResolve produced the absent
// marker.
type ResolutionError struct {
	ServiceType reflect.Type
	Cause       error
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", formatType(e.ServiceType), e.Cause)
}

func (e ResolutionError) Unwrap() error {
	return e.Cause
}

// CycleError indicates the requested interface already appears on the
// current resolution chain.
type CycleError struct {
	ServiceType reflect.Type
	Path        []reflect.Type
}

func (e CycleError) Error() string {
	var b strings.Builder
	b.WriteString("circular dependency detected: ")
	for _, t := range e.Path {
		b.WriteString(formatType(t))
		b.WriteString(" -> ")
	}
	b.WriteString(formatType(e.ServiceType))
	return b.String()
}

// ConstructorError indicates a registered constructor returned a non-nil
// error. The failed recipe's product becomes the absent marker; the error
// surfaces at the top-level TryResolve.
type ConstructorError struct {
	Constructor reflect.Type
	Cause       error
}

func (e ConstructorError) Error() string {
	return fmt.Sprintf("constructor %s failed: %v", formatType(e.Constructor), e.Cause)
}

func (e ConstructorError) Unwrap() error {
	return e.Cause
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Interface, reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	case reflect.Func:
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
