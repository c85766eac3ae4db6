// Package registry provides the in-memory keyed store shared by every demo
// domain. A Registry owns the authoritative set of entities of one kind,
// keyed by a caller-assigned identifier, and enforces key uniqueness and
// existence on every operation. Iteration order is insertion order.
package registry

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	// ErrDuplicateKey is returned by Add when the identifier is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned by Get, Remove and Update for unknown identifiers.
	ErrNotFound = errors.New("not found")
	// ErrInvalidValue marks constraint violations raised during entity
	// construction or by an Update mutation. Domain packages wrap it with
	// fmt.Errorf("...: %w", ErrInvalidValue) so callers can match with errors.Is.
	ErrInvalidValue = errors.New("invalid value")
)

// Registry is an insertion-ordered map from identifier to entity. Entities are
// stored by value; callers get copies back and mutate stored state only
// through Update. A Registry is not safe for concurrent use.
type Registry[K comparable, V any] struct {
	entries *orderedmap.OrderedMap[K, V]
}

// New returns an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: orderedmap.New[K, V]()}
}

// Add stores item under id. It fails with ErrDuplicateKey when id is already
// present, leaving the registry unchanged.
func (r *Registry[K, V]) Add(id K, item V) error {
	if _, ok := r.entries.Get(id); ok {
		return fmt.Errorf("add %v: %w", id, ErrDuplicateKey)
	}
	r.entries.Set(id, item)
	return nil
}

// Get returns the entity stored under id, or ErrNotFound.
func (r *Registry[K, V]) Get(id K) (V, error) {
	item, ok := r.entries.Get(id)
	if !ok {
		var zero V
		return zero, fmt.Errorf("get %v: %w", id, ErrNotFound)
	}
	return item, nil
}

// Remove deletes the entry for id, or fails with ErrNotFound. No other entry
// is affected. A later Add of the same id appends at the new insertion
// position.
func (r *Registry[K, V]) Remove(id K) error {
	if _, ok := r.entries.Delete(id); !ok {
		return fmt.Errorf("remove %v: %w", id, ErrNotFound)
	}
	return nil
}

// Update applies mutate to the entity stored under id and replaces it with
// the result. When mutate returns an error the stored entity is left exactly
// as it was; no partially-applied mutation is ever observable. The entry
// keeps its insertion position.
func (r *Registry[K, V]) Update(id K, mutate func(V) (V, error)) error {
	current, ok := r.entries.Get(id)
	if !ok {
		return fmt.Errorf("update %v: %w", id, ErrNotFound)
	}
	next, err := mutate(current)
	if err != nil {
		return err
	}
	r.entries.Set(id, next)
	return nil
}

// List returns a snapshot of all entities in insertion order. The returned
// slice is freshly allocated; mutating it has no effect on the registry.
func (r *Registry[K, V]) List() []V {
	out := make([]V, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Find returns the first entity in insertion order satisfying pred. A miss is
// not an error: the second return is false when nothing matches.
func (r *Registry[K, V]) Find(pred func(V) bool) (V, bool) {
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pred(pair.Value) {
			return pair.Value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of stored entities.
func (r *Registry[K, V]) Len() int {
	return r.entries.Len()
}

// GroupBy builds a derived index over the registry's current contents,
// grouping entities by the foreign key extracted by key. Each group preserves
// the entities' relative insertion order. The result is a read-only cache: it
// is never authoritative and must be recomputed after the registry changes.
func GroupBy[K comparable, V any, F comparable](r *Registry[K, V], key func(V) F) map[F][]V {
	groups := make(map[F][]V)
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		fk := key(pair.Value)
		groups[fk] = append(groups[fk], pair.Value)
	}
	return groups
}
