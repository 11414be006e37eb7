package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores component renderers by type name. Callers can register new
// renderers or override built-ins; lookups that miss degrade to instance
// omission at compile time rather than failing the document.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]ComponentRenderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]ComponentRenderer),
	}
}

// Register associates a renderer with a component type name. Existing entries
// are replaced.
func (r *Registry) Register(typeName string, renderer ComponentRenderer) error {
	name := strings.TrimSpace(typeName)
	if name == "" {
		return fmt.Errorf("render: component type name is required")
	}
	if renderer == nil {
		return fmt.Errorf("render: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(typeName string, renderer ComponentRenderer) {
	if err := r.Register(typeName, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by component type name.
func (r *Registry) Get(typeName string) (ComponentRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[typeName]
	return renderer, ok
}

// Has reports whether a renderer is registered for the type name.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[typeName]
	return ok
}

// Names returns a sorted list of registered component type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
