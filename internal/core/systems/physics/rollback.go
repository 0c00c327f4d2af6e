package physics

import (
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/systems"
)

// Rollback puts dynamic solid movers that ended up inside another solid back
// to their last valid pose. There is no sliding: the whole move is undone.
type Rollback struct{}

func (Rollback) Name() string               { return "rollback" }
func (Rollback) Phase() systems.Phase       { return systems.PhaseResponse }
func (Rollback) Priority() systems.Priority { return systems.PriorityLowest }

func (Rollback) Update(ctx *systems.Context) error {
	solids := ctx.Registry.Query(models.WithTag(models.TagSolid), models.WithCollider()).Collect()

	for _, m := range solids {
		if !m.Has(models.TagDynamic) {
			continue
		}
		for _, s := range solids {
			if s == m || !m.Collider.Intersects(s.Collider) {
				continue
			}

			m.Pose = m.LastValidPose
			m.RefreshCollider()

			ctx.Log.Debug("rollback",
				log.Uint64("entity", uint64(m.ID())),
				log.Uint64("blocker", uint64(s.ID())),
			)
			emit(ctx, events.TypeRollback, events.Rollback{Tick: ctx.Tick, Entity: m.ID(), Blocker: s.ID()})
			break
		}
	}
	return nil
}
