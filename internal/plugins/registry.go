package plugins

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds loadable components. It satisfies args.Resolver.
type Registry struct {
	mu         sync.RWMutex
	components map[Key]any
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{components: map[Key]any{}}
}

// Register stores handle under kind/name:class, replacing any previous one.
func (r *Registry) Register(kind, name, class string, handle any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.components == nil {
		r.components = map[Key]any{}
	}
	r.components[normalize(kind, name, class)] = handle
}

// Unregister removes kind/name:class if present.
func (r *Registry) Unregister(kind, name, class string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.components, normalize(kind, name, class))
}

// Get returns the handle registered under kind/name:class.
func (r *Registry) Get(kind, name, class string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.components[normalize(kind, name, class)]
	return h, ok
}

// Resolve implements args.Resolver.
func (r *Registry) Resolve(kind, name, class string) (any, error) {
	h, ok := r.Get(kind, name, class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComponentNotFound, normalize(kind, name, class))
	}
	return h, nil
}

// Keys lists registered components in sorted order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.components))
	for k := range r.components {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
