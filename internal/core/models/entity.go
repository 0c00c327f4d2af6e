package models

import (
	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/pkg/geometry"
)

// EntityID identifies a body. Zero is never assigned.
type EntityID uint64

const NoEntity EntityID = 0

// Kind is the gameplay role of a body.
type Kind uint8

const (
	KindTank Kind = iota + 1
	KindWall
	KindProjectile
	KindChest
)

func (k Kind) String() string {
	switch k {
	case KindTank:
		return "tank"
	case KindWall:
		return "wall"
	case KindProjectile:
		return "projectile"
	case KindChest:
		return "chest"
	default:
		return "unknown"
	}
}

// Tag is a set of capability markers attached to a body.
type Tag uint8

const (
	// TagSolid bodies block dynamic movers and bounce projectiles.
	TagSolid Tag = 1 << iota
	// TagDynamic bodies move under input and are rolled back on solid contact.
	TagDynamic
)

// Weapon is what a tank fires.
type Weapon uint8

const (
	WeaponBullet Weapon = iota + 1
	WeaponMine
	WeaponShuriken
)

func (w Weapon) String() string {
	switch w {
	case WeaponBullet:
		return "bullet"
	case WeaponMine:
		return "mine"
	case WeaponShuriken:
		return "shuriken"
	default:
		return "none"
	}
}

// Bounce is the reflection budget of a bouncing projectile. LastContact holds
// only the most recent partner.
type Bounce struct {
	Budget      uint32
	LastContact EntityID
}

type Projectile struct {
	Weapon Weapon
	Owner  EntityID
	// Armed turns true once the projectile has left its owner's collider; until
	// then it cannot hit the owner.
	Armed bool
}

// Input is the drive command for a tank, each axis in [-1, 1].
type Input struct {
	Throttle float64
	Turn     float64
	Fire     bool
}

type Tank struct {
	Weapon     Weapon
	Input      Input
	SpawnPose  geometry.Pose
	Deaths     int
	Protection float64 // seconds of spawn protection left
	Cooldown   float64 // seconds until the next shot
}

// Killable reports whether spawn protection has run out.
func (t *Tank) Killable() bool { return t.Protection <= 0 }

type Chest struct {
	Weapon Weapon
}

// Body is one simulated entity. Optional components are nil when absent.
type Body struct {
	id EntityID

	Name string
	Kind Kind
	Tags Tag

	Pose          geometry.Pose
	LastValidPose geometry.Pose
	Velocity      geometry.Vec2
	Collider      *collision.Collider

	// Intersects and Contacts are rewritten by every intersection sweep.
	Intersects bool
	Contacts   []EntityID

	Bounce     *Bounce
	Projectile *Projectile
	Tank       *Tank
	Chest      *Chest

	destroyed bool
}

func (b *Body) ID() EntityID { return b.id }

func (b *Body) Has(t Tag) bool { return b.Tags&t == t }

func (b *Body) IsDestroyed() bool { return b.destroyed }

// RefreshCollider brings the collider's world geometry up to the current pose.
func (b *Body) RefreshCollider() {
	if b.Collider != nil {
		b.Collider.Refresh(b.Pose)
	}
}

// TouchedBy reports whether id was among this tick's contacts.
func (b *Body) TouchedBy(id EntityID) bool {
	for _, c := range b.Contacts {
		if c == id {
			return true
		}
	}
	return false
}
