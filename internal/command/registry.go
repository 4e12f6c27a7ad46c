package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gyaneshwarpardhi/familytree/internal/family"
)

// Handler applies one relation code to the tree.
type Handler interface {
	// Code returns the relation code this handler is registered under.
	Code() string
	// Apply links subject and object in the tree.
	Apply(tree *family.Tree, subject, object family.PersonID)
	// Describe returns the confirmation shown after Apply.
	Describe(subject, object string) string
}

// Registry maps relation codes to their handlers.
// It is safe for concurrent reads; Register should only be called at startup.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// DefaultRegistry returns a Registry holding P, C, S and PS.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, h := range defaultHandlers() {
		r.Register(h)
	}
	return r
}

// Register adds a handler. Panics on duplicate code to surface misconfiguration early.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[h.Code()]; exists {
		panic(fmt.Sprintf("relation registry: duplicate code %q", h.Code()))
	}
	r.handlers[h.Code()] = h
}

// Get returns the handler for code.
func (r *Registry) Get(code string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[code]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrInvalidRelation, code)
	}
	return h, nil
}

// Codes returns every registered code, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
