package types

import (
	"fmt"
	"sort"
	"sync"

	"github.com/marmos91/uacore/pkg/ua"
)

// Registry is the process-wide table of type Descriptors, keyed by NodeId
// and by name. Descriptors are registered once at program init and never
// removed; Seal prevents any further mutation so that subsequent lookups
// need no locking on the read path beyond the RWMutex's read lock.
type Registry struct {
	mu       sync.RWMutex
	byNodeID map[string]*Descriptor
	byName   map[string]*Descriptor
	sealed   bool
}

// NewRegistry creates an empty, unsealed Registry.
func NewRegistry() *Registry {
	return &Registry{
		byNodeID: make(map[string]*Descriptor),
		byName:   make(map[string]*Descriptor),
	}
}

func nodeIDKey(id ua.NodeId) string {
	// NodeId has no canonical string form cheap enough for a map key across
	// all four identifier kinds, so key on the kind-qualified fields rather
	// than String()/Guid formatting.
	switch id.Kind {
	case ua.IdentifierNumeric:
		return fmt.Sprintf("%d:n:%d", id.NamespaceIndex, id.Numeric)
	case ua.IdentifierString:
		return fmt.Sprintf("%d:s:%s", id.NamespaceIndex, id.Str)
	case ua.IdentifierGuid:
		return fmt.Sprintf("%d:g:%s", id.NamespaceIndex, id.Guid.String())
	case ua.IdentifierOpaque:
		return fmt.Sprintf("%d:b:%x", id.NamespaceIndex, id.Opaque)
	default:
		return fmt.Sprintf("%d:?", id.NamespaceIndex)
	}
}

// Register adds a Descriptor to the registry. It fails if the registry is
// sealed, if d or d.NodeID is invalid, or if a descriptor with the same
// NodeId or Name is already registered.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("types: cannot register nil descriptor")
	}
	if d.Name == "" {
		return fmt.Errorf("types: cannot register descriptor with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("types: registry is sealed, cannot register %q", d.Name)
	}

	key := nodeIDKey(d.NodeID)
	if _, exists := r.byNodeID[key]; exists {
		return fmt.Errorf("types: descriptor for node id %v already registered", d.NodeID)
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("types: descriptor %q already registered", d.Name)
	}

	r.byNodeID[key] = d
	r.byName[d.Name] = d
	return nil
}

// Seal prevents any further registration. Call once all init-time
// descriptors have been registered.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// FindByNodeID returns the descriptor registered under id, or nil if none.
func (r *Registry) FindByNodeID(id ua.NodeId) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byNodeID[nodeIDKey(id)]
}

// FindByName returns the descriptor registered under name, or nil if none.
func (r *Registry) FindByName(name string) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// All returns every registered descriptor, sorted by name for deterministic
// iteration (used by tests).
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Descriptor, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of registered descriptors.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
