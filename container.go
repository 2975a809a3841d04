package factory

import (
	"reflect"

	"github.com/dansamargiu/FactoryContainer/internal/ancestry"
	"github.com/dansamargiu/FactoryContainer/internal/registry"
)

// Container maps interface types to factory recipes and resolves full
// dependency graphs from them. A container is an identity that owns its
// registry: hand it around by pointer, never by value. The zero value is
// not usable; call New.
//
// The container offers no internal synchronization. Mutating it
// concurrently with any other operation is undefined; resolving
// concurrently on a fully populated, no-longer-mutated container is safe.
type Container struct {
	noCopy  noCopy
	recipes *registry.Registry
}

// New creates an empty container.
func New() *Container {
	return &Container{recipes: registry.New()}
}

// Len returns the number of registered bindings.
func (c *Container) Len() int {
	return c.recipes.Len()
}

// Types returns the registered interface types in unspecified order.
func (c *Container) Types() []reflect.Type {
	return c.recipes.Types()
}

// Clear removes every binding, releasing any captured instances the
// container was keeping alive.
func (c *Container) Clear() {
	c.recipes.Clear()
}

// resolve materialises an instance of t, or returns nil as the absent
// marker. The ancestor path carries the chain of in-progress resolves:
// a type already on the path means the dependency graph loops back on
// itself, and the recipe is not invoked.
func (c *Container) resolve(t reflect.Type, path *ancestry.Path) any {
	recipe, ok := c.recipes.Lookup(t)
	if !ok {
		return nil
	}

	if path.Contains(t) {
		path.Fail(CycleError{ServiceType: t, Path: path.Types()})
		return nil
	}

	// Depth-first traversal. The pop is deferred so the path is restored
	// even when a constructor panics mid-chain.
	path.Push(t)
	defer path.Pop()

	return recipe(path)
}

// noCopy makes `go vet -copylocks` flag containers copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
