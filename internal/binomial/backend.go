package binomial

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// DefaultBackend is the name of the backend used when none is requested.
const DefaultBackend = "multiplicative"

// Backend generates the coefficient row of (x+1)^n.
type Backend interface {
	// Name returns the registry key of the backend.
	Name() string
	// Coefficients returns [C(n,0), ..., C(n,n)].
	Coefficients(n uint64) []*big.Int
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc struct {
	name string
	fn   func(n uint64) []*big.Int
}

// NewBackendFunc creates a named Backend from fn.
func NewBackendFunc(name string, fn func(n uint64) []*big.Int) BackendFunc {
	return BackendFunc{name: name, fn: fn}
}

// Name returns the backend name.
func (b BackendFunc) Name() string { return b.name }

// Coefficients calls the wrapped function.
func (b BackendFunc) Coefficients(n uint64) []*big.Int { return b.fn(n) }

var (
	constructorsMu sync.RWMutex
	constructors   = map[string]func() Backend{
		DefaultBackend: func() Backend { return NewBackendFunc(DefaultBackend, Coefficients) },
		"pascal":       func() Backend { return NewBackendFunc("pascal", PascalRow) },
	}
)

// RegisterBackend makes a backend constructor available to every registry
// created afterwards. Optional backends call it from init.
func RegisterBackend(name string, ctor func() Backend) {
	constructorsMu.Lock()
	defer constructorsMu.Unlock()
	constructors[name] = ctor
}

// Registry resolves backends by name.
type Registry struct {
	backends map[string]Backend
}

// NewDefaultRegistry returns a registry holding every registered backend.
func NewDefaultRegistry() *Registry {
	constructorsMu.RLock()
	defer constructorsMu.RUnlock()

	r := &Registry{backends: make(map[string]Backend, len(constructors))}
	for name, ctor := range constructors {
		r.backends[name] = ctor()
	}
	return r
}

// Get returns the backend registered under name.
func (r *Registry) Get(name string) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, r.List())
	}
	return b, nil
}

// MustGet is like Get but panics on unknown names.
func (r *Registry) MustGet(name string) Backend {
	b, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return b
}

// List returns the registered backend names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
