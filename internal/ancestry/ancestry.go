// Package ancestry tracks the chain of interface types currently being
// resolved on a single resolution call. The path is the container's only
// per-call state: it is allocated fresh for every top-level resolve,
// threaded explicitly through nested resolves, and never shared.
package ancestry

import (
	"errors"
	"reflect"
)

// Path is the ordered sequence of interface identities in progress on one
// resolution chain. It grows on entry to each nested resolve and shrinks on
// exit, strictly LIFO. Membership is what breaks dependency cycles.
//
// Path also collects constructor-reported errors encountered along the
// chain, so a top-level caller can explain an empty result.
type Path struct {
	types []reflect.Type
	errs  []error
}

// NewPath returns an empty path for a top-level resolve.
func NewPath() *Path {
	return &Path{}
}

// Push appends t to the path.
func (p *Path) Push(t reflect.Type) {
	p.types = append(p.types, t)
}

// Pop removes the most recently pushed type.
func (p *Path) Pop() {
	p.types = p.types[:len(p.types)-1]
}

// Contains reports whether t is already being resolved on this chain.
// Detection is exact equality of interface identity; the concrete
// implementation behind the interface plays no part.
func (p *Path) Contains(t reflect.Type) bool {
	for _, pt := range p.types {
		if pt == t {
			return true
		}
	}
	return false
}

// Len returns the current depth of the chain.
func (p *Path) Len() int {
	return len(p.types)
}

// Types returns a copy of the chain, outermost resolve first.
func (p *Path) Types() []reflect.Type {
	out := make([]reflect.Type, len(p.types))
	copy(out, p.types)
	return out
}

// Fail records a failure produced while resolving this chain.
func (p *Path) Fail(err error) {
	if err != nil {
		p.errs = append(p.errs, err)
	}
}

// Err returns the recorded failures joined together, or nil if the chain
// resolved without incident.
func (p *Path) Err() error {
	return errors.Join(p.errs...)
}
