package directive

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a directive instance for one signature-handling call.
type Factory func(Config) Directive

// Registry maps construct names to directive factories. The build pipeline
// consults it once per documented member.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty directive registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a registry with the five built-in directives.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("model", func(cfg Config) Directive { return NewModel(cfg) })
	r.MustRegister("settings", func(cfg Config) Directive { return NewSettings(cfg) })
	r.MustRegister("config", func(cfg Config) Directive { return NewConfigClass(cfg) })
	r.MustRegister("field", func(cfg Config) Directive { return NewField(cfg) })
	r.MustRegister("validator", func(cfg Config) Directive { return NewValidator(cfg) })
	return r
}

// Register adds a factory for a construct name. Duplicates return an error.
func (r *Registry) Register(construct string, factory Factory) error {
	if construct == "" {
		return fmt.Errorf("directive: construct name is required")
	}
	if factory == nil {
		return fmt.Errorf("directive: factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[construct]; exists {
		return fmt.Errorf("directive: construct %q already registered", construct)
	}
	r.factories[construct] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(construct string, factory Factory) {
	if err := r.Register(construct, factory); err != nil {
		panic(err)
	}
}

// New instantiates the directive registered for a construct.
func (r *Registry) New(construct string, cfg Config) (Directive, error) {
	r.mu.RLock()
	factory, ok := r.factories[construct]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("directive: construct %q not registered", construct)
	}
	return factory(cfg), nil
}

// Constructs returns the sorted construct names known to the registry.
func (r *Registry) Constructs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
