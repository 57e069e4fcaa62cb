package ir

import (
	"fmt"
	"sync"
)

// LazyOpKind defers an operator-kind registry lookup until first use.
//
// Backend-internal operators are declared at package scope, where eager
// resolution would tie their initialization order to the registry's. A
// LazyOpKind stores only the name at construction and resolves it exactly
// once, on the first call to Resolve or Kind, no matter how many goroutines
// race to get there first.
type LazyOpKind struct {
	name    string
	resolve func() (OpKind, error)
}

// NewLazyOpKind returns a handle for name. No registry lookup happens until
// the handle is first resolved.
func NewLazyOpKind(name string) *LazyOpKind {
	return newLazyOpKind(name, GetOpKind)
}

// newLazyOpKind lets tests substitute the registry lookup.
func newLazyOpKind(name string, lookup func(string) (OpKind, error)) *LazyOpKind {
	return &LazyOpKind{
		name:    name,
		resolve: sync.OnceValues(func() (OpKind, error) { return lookup(name) }),
	}
}

// Name returns the qualified name the handle was constructed with.
func (l *LazyOpKind) Name() string {
	return l.name
}

// Resolve returns the operator kind for the handle's name, performing the
// registry lookup on the first call and caching the result. Concurrent
// first callers block until the single in-flight lookup completes; all of
// them observe the same fully-resolved value. If the first lookup fails,
// the handle is poisoned: every later call returns the original error and
// the lookup does not run again.
func (l *LazyOpKind) Resolve() (OpKind, error) {
	return l.resolve()
}

// Kind is the accessor for handles with known-good names, such as the
// package-level builtins. It panics if resolution fails.
func (l *LazyOpKind) Kind() OpKind {
	kind, err := l.Resolve()
	if err != nil {
		panic(fmt.Sprintf("ir: resolve %q: %v", l.name, err))
	}
	return kind
}
