package physics

import (
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/systems"
)

// Refresh rebuilds every collider's world geometry from its body's pose.
type Refresh struct{}

func (Refresh) Name() string               { return "refresh" }
func (Refresh) Phase() systems.Phase       { return systems.PhaseRefresh }
func (Refresh) Priority() systems.Priority { return systems.PriorityNormal }

func (Refresh) Update(ctx *systems.Context) error {
	ctx.Registry.Query(models.WithCollider()).Each((*models.Body).RefreshCollider)
	return nil
}
