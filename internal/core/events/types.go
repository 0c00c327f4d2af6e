package events

import (
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/pkg/geometry"
)

// Event types published by the simulation.
const (
	TypeCollision = "arena.collision"
	TypeBounce    = "arena.bounce"
	TypeDespawn   = "arena.despawn"
	TypeRollback  = "arena.rollback"
	TypePickup    = "arena.pickup"
	TypeHit       = "arena.hit"
	TypeSpawn     = "arena.spawn"
)

// Collision is published once per ordered intersecting pair per tick.
type Collision struct {
	Tick   uint64
	Entity models.EntityID
	Other  models.EntityID
}

type Bounce struct {
	Tick     uint64
	Entity   models.EntityID
	Partner  models.EntityID
	Budget   uint32
	Velocity geometry.Vec2
}

type Despawn struct {
	Tick   uint64
	Entity models.EntityID
	Kind   models.Kind
	Reason string
}

type Rollback struct {
	Tick    uint64
	Entity  models.EntityID
	Blocker models.EntityID
}

type Pickup struct {
	Tick   uint64
	Tank   models.EntityID
	Chest  models.EntityID
	Weapon models.Weapon
}

type Hit struct {
	Tick       uint64
	Tank       models.EntityID
	Projectile models.EntityID
	Deaths     int
}

type Spawn struct {
	Entity models.EntityID
	Kind   models.Kind
	Pose   geometry.Pose
}
