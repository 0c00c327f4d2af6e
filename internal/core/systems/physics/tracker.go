package physics

import (
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/systems"
)

// Tracker is the all-pairs intersection sweep. It rewrites every body's
// Intersects flag and Contacts list and publishes one collision event per
// ordered intersecting pair.
//
// The sweep is O(n²) with no broad phase; it is sized for a few dozen bodies.
type Tracker struct{}

func (Tracker) Name() string               { return "intersections" }
func (Tracker) Phase() systems.Phase       { return systems.PhaseSweep }
func (Tracker) Priority() systems.Priority { return systems.PriorityNormal }

func (Tracker) Update(ctx *systems.Context) error {
	bodies := ctx.Registry.Query(models.WithCollider()).Collect()
	for _, b := range bodies {
		b.Intersects = false
		b.Contacts = b.Contacts[:0]
	}

	// Intersection is symmetric, so each unordered pair is tested once.
	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if !a.Collider.Intersects(b.Collider) {
				continue
			}
			a.Intersects, b.Intersects = true, true
			a.Contacts = append(a.Contacts, b.ID())
			b.Contacts = append(b.Contacts, a.ID())
		}
	}

	for _, b := range bodies {
		for _, other := range b.Contacts {
			emit(ctx, events.TypeCollision, events.Collision{Tick: ctx.Tick, Entity: b.ID(), Other: other})
		}
	}
	return nil
}
