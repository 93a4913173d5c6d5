package action

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownType is returned when a route names an action type no executor
// is registered under.
var ErrUnknownType = errors.New("unknown action type")

// Registry holds the executors webhook routes can name in their actions list.
// Executors are registered at startup; routes bind against it on every build
// and the engine looks executors up on every delivery.
type Registry struct {
	mu     sync.RWMutex
	byType map[string]Executor
}

// NewRegistry creates a Registry holding execs.
func NewRegistry(execs ...Executor) *Registry {
	r := &Registry{byType: make(map[string]Executor, len(execs))}
	for _, e := range execs {
		r.Register(e)
	}
	return r
}

// Register adds e under e.Type(). It panics on an empty or duplicate type.
func (r *Registry) Register(e Executor) {
	t := e.Type()
	if t == "" {
		panic("action registry: executor with empty type")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byType[t]; exists {
		panic(fmt.Sprintf("action registry: duplicate type %q", t))
	}
	r.byType[t] = e
}

// Get returns the executor registered for actionType. The error wraps
// ErrUnknownType and lists what is registered.
func (r *Registry) Get(actionType string) (Executor, error) {
	r.mu.RLock()
	e, ok := r.byType[actionType]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", ErrUnknownType, actionType, strings.Join(r.Types(), ", "))
	}
	return e, nil
}

// Bind resolves the executor for one route action and checks its params.
func (r *Registry) Bind(actionType string, params map[string]interface{}) (Executor, error) {
	e, err := r.Get(actionType)
	if err != nil {
		return nil, err
	}
	if err := e.Validate(params); err != nil {
		return nil, fmt.Errorf("%s params: %w", actionType, err)
	}
	return e, nil
}

// Types returns the registered action types, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
