package resources

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ErrTypeNotRegistered is returned by type loaders that do not know a name.
var ErrTypeNotRegistered = errors.New("type not registered")

func typeNotRegistered(name string) error {
	return fmt.Errorf("%w: %s", ErrTypeNotRegistered, name)
}

// TypeRegistry maps fully qualified type names to Go types.
// It is safe for concurrent use.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewTypeRegistry returns an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]reflect.Type)}
}

// Register records the dynamic type of v under name. Pass a typed nil
// pointer to register a pointer type without allocating, e.g.
// Register("com.example.User", (*User)(nil)).
func (r *TypeRegistry) Register(name string, v interface{}) {
	r.RegisterType(name, reflect.TypeOf(v))
}

// RegisterType records t under name, replacing any earlier entry.
// A nil type removes the entry.
func (r *TypeRegistry) RegisterType(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t == nil {
		delete(r.types, name)
		return
	}
	r.types[name] = t
}

// Type returns the type registered under name.
func (r *TypeRegistry) Type(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return nil, typeNotRegistered(name)
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
