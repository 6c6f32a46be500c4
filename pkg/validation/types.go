package validation

import (
	"slices"
	"sync"
)

// Types maps record type names to their registries.
type Types struct {
	mu         sync.RWMutex
	registries map[string]*Registry
}

func NewTypes() *Types {
	return &Types{registries: make(map[string]*Registry)}
}

// For returns the registry of name, creating it on first use.
func (t *Types) For(name string) *Registry {
	t.mu.RLock()
	reg, ok := t.registries[name]
	t.mu.RUnlock()
	if ok {
		return reg
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if reg, ok := t.registries[name]; ok {
		return reg
	}
	reg = NewRegistry(name)
	t.registries[name] = reg
	return reg
}

// Lookup returns the registry of name if it exists.
func (t *Types) Lookup(name string) (*Registry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	reg, ok := t.registries[name]
	return reg, ok
}

// Names returns the sorted names of known types.
func (t *Types) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.registries))
	for name := range t.registries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears every registry. Registries keep their identity, so references
// obtained from For stay valid.
func (t *Types) Reset() {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, reg := range t.registries {
		reg.Clear()
	}
}
