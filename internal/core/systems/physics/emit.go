package physics

import (
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/systems"
)

const source = "physics"

func emit(ctx *systems.Context, typ string, data any) { ctx.Emit(typ, source, data) }

// despawn marks b destroyed and announces it.
func despawn(ctx *systems.Context, b *models.Body, reason string) error {
	if err := ctx.Registry.Destroy(b.ID()); err != nil {
		return err
	}
	ctx.Log.Debug("despawn",
		log.Uint64("entity", uint64(b.ID())),
		log.Stringer("kind", b.Kind),
		log.String("reason", reason),
	)
	emit(ctx, events.TypeDespawn, events.Despawn{Tick: ctx.Tick, Entity: b.ID(), Kind: b.Kind, Reason: reason})
	return nil
}
