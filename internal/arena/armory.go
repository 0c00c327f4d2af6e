package arena

import (
	"fmt"

	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/pkg/geometry"
)

// armory spawns projectiles for the fire system. It runs inside Tick, so the
// world lock is already held.
type armory struct {
	w *World
}

func (a armory) Fire(tank *models.Body) error {
	wc := a.w.cfg.Weapons
	tc := a.w.cfg.Tank
	forward := tank.Pose.Forward()

	var (
		radius   float64
		offset   float64
		velocity geometry.Vec2
		bounce   *models.Bounce
	)
	switch weapon := tank.Tank.Weapon; weapon {
	case models.WeaponBullet:
		radius, offset = wc.BulletRadius, tc.MuzzleOffset
		velocity = forward.Scale(wc.BulletSpeed)
	case models.WeaponShuriken:
		radius, offset = wc.ShurikenRadius, tc.MuzzleOffset
		velocity = forward.Scale(wc.ShurikenSpeed)
		bounce = &models.Bounce{Budget: wc.ShurikenBounce}
	case models.WeaponMine:
		radius, offset = wc.MineRadius, tc.MineOffset
	default:
		return fmt.Errorf("%w: tank %d has weapon %d", models.ErrInvalidEntity, tank.ID(), weapon)
	}

	shape, err := collision.NewCircleShape(radius)
	if err != nil {
		return err
	}
	_, err = a.w.spawn(&models.Body{
		Kind:       models.KindProjectile,
		Pose:       geometry.Pose{Position: tank.Pose.Apply(geometry.V(0, offset)), Rotation: tank.Pose.Rotation},
		Velocity:   velocity,
		Bounce:     bounce,
		Projectile: &models.Projectile{Weapon: tank.Tank.Weapon, Owner: tank.ID()},
	}, shape)
	return err
}
