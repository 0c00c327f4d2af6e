package physics

import (
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/systems"
	"github.com/zeusync/arena/pkg/geometry"
)

// Bouncer reflects bouncing bodies off solids.
//
// For each solid partner other than the last one handled: with budget left the
// budget drops by one and the velocity is reflected; with no budget left the
// body is destroyed. Only the most recent partner is remembered, so a body
// wedged between two solids can bounce more than once per contact.
type Bouncer struct{}

func (Bouncer) Name() string               { return "bounce" }
func (Bouncer) Phase() systems.Phase       { return systems.PhaseResponse }
func (Bouncer) Priority() systems.Priority { return systems.PriorityHigh }

func (Bouncer) Update(ctx *systems.Context) error {
	for _, b := range ctx.Registry.Query(models.WithBounce(), models.WithCollider()).Collect() {
		for _, id := range b.Contacts {
			if id == b.Bounce.LastContact {
				continue
			}
			partner, ok := ctx.Registry.Get(id)
			if !ok || !partner.Has(models.TagSolid) {
				continue
			}

			if b.Bounce.Budget == 0 {
				if err := despawn(ctx, b, "bounce budget exhausted"); err != nil {
					return err
				}
				break
			}

			b.Bounce.Budget--
			b.Bounce.LastContact = id
			b.Velocity = Reflect(b.Velocity, b.Collider.ContactVector(partner.Collider))

			ctx.Log.Debug("bounce",
				log.Uint64("entity", uint64(b.ID())),
				log.Uint64("partner", uint64(id)),
				log.Uint32("budget", b.Bounce.Budget),
			)
			emit(ctx, events.TypeBounce, events.Bounce{
				Tick:     ctx.Tick,
				Entity:   b.ID(),
				Partner:  id,
				Budget:   b.Bounce.Budget,
				Velocity: b.Velocity,
			})
		}
	}
	return nil
}

// Reflect mirrors v off a surface given by a contact vector lying along it:
// v - 2(v·n)n with n the unit perpendicular of the contact vector. A zero
// contact vector leaves v unchanged.
func Reflect(v, contact geometry.Vec2) geometry.Vec2 {
	t, ok := contact.Normalize()
	if !ok {
		return v
	}
	return v.Reflect(t.Perp())
}
