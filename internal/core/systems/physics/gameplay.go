package physics

import (
	"time"

	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/systems"
)

// Hits resolves projectiles touching killable tanks: the projectile is
// destroyed and the tank is sent back to its spawn pose with fresh spawn
// protection. Tanks still under protection are left to the bounce system.
type Hits struct {
	protection time.Duration
}

func NewHits(protection time.Duration) *Hits { return &Hits{protection: protection} }

func (s *Hits) Name() string               { return "hits" }
func (s *Hits) Phase() systems.Phase       { return systems.PhaseResponse }
func (s *Hits) Priority() systems.Priority { return systems.PriorityHighest }

func (s *Hits) Update(ctx *systems.Context) error {
	for _, p := range ctx.Registry.Query(models.WithKind(models.KindProjectile)).Collect() {
		if p.Projectile == nil {
			continue
		}
		if !p.Projectile.Armed && !p.TouchedBy(p.Projectile.Owner) {
			p.Projectile.Armed = true
		}

		for _, id := range p.Contacts {
			tank, ok := ctx.Registry.Get(id)
			if !ok || tank.Tank == nil || !tank.Tank.Killable() {
				continue
			}
			if id == p.Projectile.Owner && !p.Projectile.Armed {
				continue
			}

			if err := despawn(ctx, p, "hit tank"); err != nil {
				return err
			}
			s.respawn(ctx, tank)
			emit(ctx, events.TypeHit, events.Hit{Tick: ctx.Tick, Tank: tank.ID(), Projectile: p.ID(), Deaths: tank.Tank.Deaths})
			break
		}
	}
	return nil
}

func (s *Hits) respawn(ctx *systems.Context, tank *models.Body) {
	tank.Tank.Deaths++
	tank.Tank.Protection = s.protection.Seconds()
	tank.Pose = tank.Tank.SpawnPose
	tank.LastValidPose = tank.Tank.SpawnPose
	tank.RefreshCollider()

	ctx.Log.Info("tank hit",
		log.Uint64("entity", uint64(tank.ID())),
		log.String("name", tank.Name),
		log.Int("deaths", tank.Tank.Deaths),
	)
}

// WallImpacts destroys projectiles without a bounce budget as soon as they
// touch a wall.
type WallImpacts struct{}

func (WallImpacts) Name() string               { return "wall-impacts" }
func (WallImpacts) Phase() systems.Phase       { return systems.PhaseResponse }
func (WallImpacts) Priority() systems.Priority { return systems.PriorityNormal }

func (WallImpacts) Update(ctx *systems.Context) error {
	projectiles := ctx.Registry.Query(
		models.WithKind(models.KindProjectile),
		models.Without(models.WithBounce()),
	).Collect()

	for _, p := range projectiles {
		for _, id := range p.Contacts {
			if other, ok := ctx.Registry.Get(id); ok && other.Kind == models.KindWall {
				if err := despawn(ctx, p, "hit wall"); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// Pickups hands a chest's weapon to the first tank touching it.
type Pickups struct{}

func (Pickups) Name() string               { return "pickups" }
func (Pickups) Phase() systems.Phase       { return systems.PhaseResponse }
func (Pickups) Priority() systems.Priority { return systems.PriorityLow }

func (Pickups) Update(ctx *systems.Context) error {
	for _, c := range ctx.Registry.Query(models.WithKind(models.KindChest)).Collect() {
		if c.Chest == nil {
			continue
		}
		for _, id := range c.Contacts {
			tank, ok := ctx.Registry.Get(id)
			if !ok || tank.Tank == nil {
				continue
			}

			tank.Tank.Weapon = c.Chest.Weapon
			if err := despawn(ctx, c, "collected"); err != nil {
				return err
			}
			emit(ctx, events.TypePickup, events.Pickup{Tick: ctx.Tick, Tank: tank.ID(), Chest: c.ID(), Weapon: c.Chest.Weapon})
			break
		}
	}
	return nil
}

// Flush removes bodies destroyed during the tick.
type Flush struct{}

func (Flush) Name() string               { return "flush" }
func (Flush) Phase() systems.Phase       { return systems.PhasePublish }
func (Flush) Priority() systems.Priority { return systems.PriorityHighest }

func (Flush) Update(ctx *systems.Context) error {
	if removed := ctx.Registry.Flush(); len(removed) > 0 {
		ctx.Log.Debug("flushed bodies", log.Uint64("tick", ctx.Tick), log.Int("count", len(removed)))
	}
	return nil
}
