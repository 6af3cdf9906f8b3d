package pipeline

import (
	"sort"
	"sync"
)

// Registry provides named task lookup for declarative pipeline
// construction (see loader.go).
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Add registers a task under its own name.
func (r *Registry) Add(task Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.Name()] = task
}

// Get retrieves a task by name.
func (r *Registry) Get(name string) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[name]
	return t, ok
}

// List returns sorted names of all registered tasks.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
