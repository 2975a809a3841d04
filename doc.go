// Package factory provides a minimal dependency-injection container for Go.
// It maps interface types to factory recipes and resolves full dependency
// graphs recursively, constructing and injecting collaborators on demand.
//
// # Overview
//
// Production code depends on interfaces, wiring code registers concrete
// implementations (or pre-built singleton instances) with the container once,
// and call sites ask the container for an interface and receive a fully
// assembled object graph:
//   - Type bindings construct a fresh instance on every resolve
//   - Instance bindings return the same pre-built value on every resolve
//   - Dependencies are declared by a constructor's parameter list and
//     resolved left to right through the same container
//   - Dependency cycles are detected and broken instead of recursing forever
//
// # Basic Usage
//
// Create a container, register bindings, and resolve:
//
//	c := factory.New()
//
//	factory.RegisterType[Logger](c, NewConsoleLogger)
//	factory.RegisterType[UserService](c, NewUserService)
//
//	svc := factory.Resolve[UserService](c)
//	if svc == nil {
//	    // UserService was never registered
//	}
//
// Because Go methods cannot take type parameters, the generic surface is
// exposed as package-level functions over a *Container.
//
// # Type Bindings
//
// RegisterType binds an interface to a constructor. The constructor's
// parameters are the ordered dependency declaration; each parameter type is
// resolved through the container before the constructor runs:
//
//	func NewUserService(db Database, logger Logger) *userService {
//	    return &userService{db: db, logger: logger}
//	}
//
//	factory.RegisterType[UserService](c, NewUserService)
//
// Every resolve of a type binding constructs a new instance. The container
// performs no caching of constructed values.
//
// # Instance Bindings
//
// RegisterInstance binds an interface to a single pre-built value. Every
// resolve returns the identical handle, giving singleton semantics:
//
//	logger := NewConsoleLogger()
//	factory.RegisterInstance[Logger](c, logger)
//
// # Failure Semantics
//
// Resolve never returns an error. An unregistered interface, a dependency
// cycle anywhere in the chain, or a constructor that reported an error all
// yield the absent marker: the zero value of the requested interface,
// comparable against nil. TryResolve performs the same resolution but
// reports why a resolve came up empty, using typed errors such as
// ResolutionError and CycleError. MustResolve panics instead.
//
// A dependency that is merely unregistered does not abort construction: the
// constructor receives the zero value for that parameter and decides for
// itself whether to accept it. This keeps optional dependencies cheap to
// express.
//
// # Thread Safety
//
// The container performs no internal synchronization. Registering or
// unregistering concurrently with any other operation is undefined. Once a
// container is fully populated and no longer mutated, concurrent resolves
// are safe: resolution only reads the registry, and all per-call state lives
// on a per-call ancestor path.
//
// # Error Handling
//
// Registration misuse surfaces as typed errors:
//   - RegistrationError: registration failed, wraps the specific cause
//   - TypeMismatchError: constructor result does not implement the interface
//   - ResolutionError: a top-level TryResolve came up empty
//   - CycleError: the dependency chain loops back on itself
//   - ConstructorError: a constructor returned a non-nil error
package factory
