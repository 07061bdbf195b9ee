package inspect

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the read-only query surface over member metadata, keyed by
// dotted model path ("module.Model"). It is populated once per documented
// build and consulted by directives during rendering.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
	models  map[string]Model
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
		models:  make(map[string]Model),
	}
}

// RegisterModule validates a module and indexes its models by dotted path.
// Duplicate modules or model paths return an error.
func (r *Registry) RegisterModule(module Module) error {
	if err := module.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[module.Name]; exists {
		return fmt.Errorf("inspect: module %q already registered", module.Name)
	}
	for _, model := range module.Models {
		path := module.Name + "." + model.Name
		if _, exists := r.models[path]; exists {
			return fmt.Errorf("inspect: model %q already registered", path)
		}
	}

	r.modules[module.Name] = module
	for _, model := range module.Models {
		r.models[module.Name+"."+model.Name] = model
	}
	return nil
}

// MustRegisterModule panics on registration failure. Useful for fixtures.
func (r *Registry) MustRegisterModule(module Module) {
	if err := r.RegisterModule(module); err != nil {
		panic(err)
	}
}

// Model looks up a model by dotted path.
func (r *Registry) Model(path string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.models[path]
	return model, ok
}

// Module looks up a registered module by name.
func (r *Registry) Module(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.modules[name]
	return module, ok
}

// Modules returns the sorted names of registered modules.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
