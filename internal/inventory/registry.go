package inventory

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ItemDetails captures metadata about an item type that is useful for
// display and parsing but not required by the slot algorithm itself.
type ItemDetails struct {
	Type        ItemType `json:"type" yaml:"type"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category,omitempty" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description"`
}

// Registry stores item details keyed by ItemType and resolves item names.
// It may be shared between inventories and is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	items  map[ItemType]ItemDetails
	byName map[string]ItemType
	nextID ItemType
}

// NewRegistry constructs an empty registry and optionally seeds it with
// initial item details.
func NewRegistry(details ...ItemDetails) *Registry {
	r := &Registry{
		items:  make(map[ItemType]ItemDetails, len(details)),
		byName: make(map[string]ItemType, len(details)),
	}
	for _, d := range details {
		_ = r.RegisterDetails(d) // ignore duplicates during seed
	}
	return r
}

// DefaultRegistry returns a registry seeded with the built-in item types.
func DefaultRegistry() *Registry {
	return NewRegistry(
		ItemDetails{Type: Apple, Name: Apple.String(), Category: "food"},
		ItemDetails{Type: Bread, Name: Bread.String(), Category: "food"},
	)
}

// RegisterDetails inserts or updates metadata for an item. The name must be
// non-empty. A zero Type is assigned the next free id.
func (r *Registry) RegisterDetails(details ItemDetails) error {
	name := strings.TrimSpace(details.Name)
	if name == "" {
		return errors.New("inventory: item details missing name")
	}
	if details.Type < None {
		return errors.New("inventory: item type must not be negative")
	}
	details.Name = name
	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil {
		r.items = make(map[ItemType]ItemDetails)
	}
	if r.byName == nil {
		r.byName = make(map[string]ItemType)
	}

	if existing, exists := r.byName[key]; exists {
		if details.Type == None {
			details.Type = existing
		} else if details.Type != existing {
			return errors.New("inventory: item name already registered with another type")
		}
	}

	if details.Type == None {
		r.nextID++
		for r.items[r.nextID].Name != "" {
			r.nextID++
		}
		details.Type = r.nextID
	} else {
		if owner, collision := r.items[details.Type]; collision && strings.ToLower(owner.Name) != key {
			return errors.New("inventory: item type already assigned to another name")
		}
		if details.Type > r.nextID {
			r.nextID = details.Type
		}
	}

	r.items[details.Type] = details
	r.byName[key] = details.Type
	return nil
}

// Lookup returns details for the provided type, if present.
func (r *Registry) Lookup(t ItemType) (ItemDetails, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	details, ok := r.items[t]
	return details, ok
}

// LookupByName resolves an item by name, ignoring case.
func (r *Registry) LookupByName(name string) (ItemDetails, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ItemDetails{}, false
	}
	details, exists := r.items[t]
	return details, exists
}

// Name returns the registered name for t, falling back to t.String().
func (r *Registry) Name(t ItemType) string {
	if r == nil || t == None {
		return t.String()
	}
	if details, ok := r.Lookup(t); ok {
		return details.Name
	}
	return t.String()
}

// Export copies registry contents into a slice sorted by type.
func (r *Registry) Export() []ItemDetails {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return nil
	}
	out := make([]ItemDetails, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
