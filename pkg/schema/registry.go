package schema

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ExpandMemberKey substitutes the 1-based index into a member key pattern.
func ExpandMemberKey(pattern string, index int) string {
	return strings.ReplaceAll(pattern, IndexPlaceholder, strconv.Itoa(index))
}

// Registry stores component schemas keyed by type name. Registration order is
// preserved because it drives "add component" pickers in consuming editors.
// Content is static configuration: build it once at process start and treat it
// as read-only afterwards.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]ComponentSchema
	order   []string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]ComponentSchema),
	}
}

// Register adds a schema under its TypeName. Duplicate names and schemas that
// violate the repeatable-group invariant return an error.
func (r *Registry) Register(s ComponentSchema) error {
	name := strings.TrimSpace(s.TypeName)
	if name == "" {
		return fmt.Errorf("schema: component type name is required")
	}
	if err := validateGroups(s); err != nil {
		return fmt.Errorf("schema: component %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("schema: component %q already registered", name)
	}

	r.schemas[name] = s
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(s ComponentSchema) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves a schema by type name.
func (r *Registry) Get(typeName string) (ComponentSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[typeName]
	return s, ok
}

// Has reports whether a component type is registered.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.schemas[typeName]
	return ok
}

// List returns all schemas in registration order.
func (r *Registry) List() []ComponentSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ComponentSchema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemas[name])
	}
	return out
}

// Names returns the registered type names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// validateGroups enforces that every member key pattern resolves, for every
// index up to MaxItems, to a property definition attached to that group.
func validateGroups(s ComponentSchema) error {
	for _, group := range s.RepeatableGroups {
		if group.MaxItems < 1 {
			return fmt.Errorf("repeatable group %q: maxItems must be >= 1, got %d", group.Key, group.MaxItems)
		}
		if len(group.MemberKeyPatterns) == 0 {
			return fmt.Errorf("repeatable group %q: at least one member key pattern is required", group.Key)
		}
		for _, pattern := range group.MemberKeyPatterns {
			if !strings.Contains(pattern, IndexPlaceholder) {
				return fmt.Errorf("repeatable group %q: pattern %q is missing the %s placeholder", group.Key, pattern, IndexPlaceholder)
			}
			for index := 1; index <= group.MaxItems; index++ {
				key := ExpandMemberKey(pattern, index)
				prop, ok := s.Property(key)
				if !ok {
					return fmt.Errorf("repeatable group %q: pattern %q expands to unknown property %q", group.Key, pattern, key)
				}
				if prop.RepeatableGroupKey != group.Key {
					return fmt.Errorf("repeatable group %q: property %q is not attached to the group", group.Key, key)
				}
			}
		}
	}
	return nil
}
