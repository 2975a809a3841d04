// Package registry stores factory recipes indexed by interface identity.
// Each interface type holds at most one live recipe; registration always
// replaces. The registry knows nothing about the concrete types behind the
// recipes it stores: recipes are uniform, type-erased callables.
package registry

import (
	"reflect"

	"github.com/dansamargiu/FactoryContainer/internal/ancestry"
)

// Recipe produces a type-erased instance for a registered interface.
// The resolver passes the current ancestor path so type recipes can resolve
// their own dependencies on the same chain. A nil result is the absent
// marker.
type Recipe func(path *ancestry.Path) any

// Registry maps interface identity to the recipe that produces it.
// Lookup and insertion are amortised constant time; iteration order is
// unspecified. The zero value is not usable; call New.
type Registry struct {
	recipes map[reflect.Type]Recipe
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{recipes: make(map[reflect.Type]Recipe)}
}

// Set stores recipe under t, replacing any previous recipe for t.
func (r *Registry) Set(t reflect.Type, recipe Recipe) {
	r.recipes[t] = recipe
}

// Remove deletes the recipe for t. Removing an absent type is a no-op.
func (r *Registry) Remove(t reflect.Type) {
	delete(r.recipes, t)
}

// Lookup returns the recipe for t and whether one is registered.
func (r *Registry) Lookup(t reflect.Type) (Recipe, bool) {
	recipe, ok := r.recipes[t]
	return recipe, ok
}

// Contains reports whether a recipe is registered for t.
func (r *Registry) Contains(t reflect.Type) bool {
	_, ok := r.recipes[t]
	return ok
}

// Len returns the number of registered recipes.
func (r *Registry) Len() int {
	return len(r.recipes)
}

// Types returns the registered interface types in unspecified order.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(r.recipes))
	for t := range r.recipes {
		out = append(out, t)
	}
	return out
}

// Clear removes every recipe.
func (r *Registry) Clear() {
	clear(r.recipes)
}
