package orchestrator

import "sync"

// Registry owns the lifetime of one Orchestrator per live session id. It is
// process-wide shared state with no persistence across restarts.
type Registry struct {
	mu        sync.RWMutex
	responder Responder
	instances map[string]*Orchestrator
}

// NewRegistry creates a registry whose orchestrators all share responder.
func NewRegistry(responder Responder) *Registry {
	return &Registry{
		responder: responder,
		instances: make(map[string]*Orchestrator),
	}
}

// Get returns the orchestrator for sessionID, lazily constructing and
// caching one on first use.
func (r *Registry) Get(sessionID string) *Orchestrator {
	r.mu.RLock()
	o, ok := r.instances[sessionID]
	r.mu.RUnlock()
	if ok {
		return o
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.instances[sessionID]; ok {
		return o
	}
	o = New(r.responder)
	r.instances[sessionID] = o
	return o
}

// Reset clears the session's orchestrator and removes it from the registry
// entirely; the next Get constructs a brand-new instance.
func (r *Registry) Reset(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.instances[sessionID]; ok {
		o.Reset()
		delete(r.instances, sessionID)
	}
}

// Len returns the number of live orchestrators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
