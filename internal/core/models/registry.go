package models

import (
	"fmt"

	"github.com/zeusync/arena/pkg/sequence"
)

// Filter selects bodies in a registry query.
type Filter func(*Body) bool

func WithTag(t Tag) Filter    { return func(b *Body) bool { return b.Has(t) } }
func WithKind(k Kind) Filter  { return func(b *Body) bool { return b.Kind == k } }
func WithCollider() Filter    { return func(b *Body) bool { return b.Collider != nil } }
func WithBounce() Filter      { return func(b *Body) bool { return b.Bounce != nil } }
func Without(f Filter) Filter { return func(b *Body) bool { return !f(b) } }

// Registry owns every live body. Iteration follows spawn order so that a tick
// is deterministic. Destroyed bodies stay visible as destroyed until Flush.
type Registry struct {
	next   EntityID
	bodies map[EntityID]*Body
	order  []*Body
}

func NewRegistry() *Registry {
	return &Registry{bodies: make(map[EntityID]*Body)}
}

// Spawn assigns an id to b, binds its collider and refreshes the collider at
// b.Pose. LastValidPose starts at the spawn pose.
func (r *Registry) Spawn(b *Body) (EntityID, error) {
	if b == nil {
		return NoEntity, ErrInvalidEntity
	}
	if b.id != NoEntity {
		return NoEntity, fmt.Errorf("%w: %d", ErrAlreadySpawned, b.id)
	}
	if b.Collider == nil {
		return NoEntity, fmt.Errorf("%w: %s %q", ErrMissingCollider, b.Kind, b.Name)
	}

	r.next++
	b.id = r.next
	b.Collider.Owner = uint64(b.id)
	b.LastValidPose = b.Pose
	b.RefreshCollider()

	r.bodies[b.id] = b
	r.order = append(r.order, b)
	return b.id, nil
}

// Get returns a live body.
func (r *Registry) Get(id EntityID) (*Body, bool) {
	b, ok := r.bodies[id]
	if !ok || b.destroyed {
		return nil, false
	}
	return b, true
}

// Destroy marks a body for removal at the next Flush. Destroying twice is an
// error so double-despawn bugs surface.
func (r *Registry) Destroy(id EntityID) error {
	b, ok := r.bodies[id]
	if !ok || b.destroyed {
		return fmt.Errorf("%w: %d", ErrEntityNotFound, id)
	}
	b.destroyed = true
	return nil
}

// Flush drops destroyed bodies and returns their ids.
func (r *Registry) Flush() []EntityID {
	var removed []EntityID
	kept := r.order[:0]
	for _, b := range r.order {
		if b.destroyed {
			removed = append(removed, b.id)
			delete(r.bodies, b.id)
			continue
		}
		kept = append(kept, b)
	}
	clear(r.order[len(kept):])
	r.order = kept
	return removed
}

// Query iterates live bodies matching every filter.
func (r *Registry) Query(filters ...Filter) *sequence.Iterator[*Body] {
	return sequence.From(r.order).Filter(func(b *Body) bool {
		if b.destroyed {
			return false
		}
		for _, f := range filters {
			if !f(b) {
				return false
			}
		}
		return true
	})
}

// Len counts live bodies.
func (r *Registry) Len() int { return r.Query().Count() }
