package physics

import (
	"math"
	"time"

	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/systems"
)

// DriveSettings tunes tank movement.
type DriveSettings struct {
	MoveSpeed     float64 // units per second along the tank's forward axis
	RotationSpeed float64 // radians per second
}

// Drive turns and moves every dynamic tank from its input. The pose before the
// move is kept as LastValidPose for Rollback.
type Drive struct {
	settings DriveSettings
}

func NewDrive(settings DriveSettings) *Drive { return &Drive{settings: settings} }

func (s *Drive) Name() string               { return "drive" }
func (s *Drive) Phase() systems.Phase       { return systems.PhaseMovement }
func (s *Drive) Priority() systems.Priority { return systems.PriorityHighest }

func (s *Drive) Update(ctx *systems.Context) error {
	ctx.Registry.Query(models.WithKind(models.KindTank), models.WithTag(models.TagDynamic)).Each(func(b *models.Body) {
		b.LastValidPose = b.Pose
		if b.Tank == nil {
			return
		}

		in := b.Tank.Input
		turn := clampUnit(in.Turn) * s.settings.RotationSpeed * ctx.DeltaTime
		move := clampUnit(in.Throttle) * s.settings.MoveSpeed * ctx.DeltaTime

		pose := b.Pose.Rotate(turn)
		b.Pose = pose.Translate(pose.Forward().Scale(move))
	})
	return nil
}

// Timers counts down tank spawn protection and weapon cooldown.
type Timers struct{}

func (Timers) Name() string               { return "timers" }
func (Timers) Phase() systems.Phase       { return systems.PhaseMovement }
func (Timers) Priority() systems.Priority { return systems.PriorityNormal }

func (Timers) Update(ctx *systems.Context) error {
	ctx.Registry.Query(models.WithKind(models.KindTank)).Each(func(b *models.Body) {
		if b.Tank == nil {
			return
		}
		b.Tank.Protection = math.Max(0, b.Tank.Protection-ctx.DeltaTime)
		b.Tank.Cooldown = math.Max(0, b.Tank.Cooldown-ctx.DeltaTime)
	})
	return nil
}

// Integrate advances every non-dynamic body by its velocity.
type Integrate struct{}

func (Integrate) Name() string               { return "integrate" }
func (Integrate) Phase() systems.Phase       { return systems.PhaseMovement }
func (Integrate) Priority() systems.Priority { return systems.PriorityHigh }

func (Integrate) Update(ctx *systems.Context) error {
	ctx.Registry.Query(models.Without(models.WithTag(models.TagDynamic))).Each(func(b *models.Body) {
		b.LastValidPose = b.Pose
		if b.Velocity.IsZero() {
			return
		}
		b.Pose = b.Pose.Translate(b.Velocity.Scale(ctx.DeltaTime))
	})
	return nil
}

// Armory spawns the projectile a tank fires.
type Armory interface {
	Fire(tank *models.Body) error
}

// Fire lets tanks with a pressed trigger and an elapsed cooldown shoot.
type Fire struct {
	armory   Armory
	interval time.Duration
}

func NewFire(armory Armory, interval time.Duration) *Fire {
	return &Fire{armory: armory, interval: interval}
}

func (s *Fire) Name() string               { return "fire" }
func (s *Fire) Phase() systems.Phase       { return systems.PhaseMovement }
func (s *Fire) Priority() systems.Priority { return systems.PriorityLow }

func (s *Fire) Update(ctx *systems.Context) error {
	tanks := ctx.Registry.Query(models.WithKind(models.KindTank)).Filter(func(b *models.Body) bool {
		return b.Tank != nil && b.Tank.Input.Fire && b.Tank.Cooldown <= 0 && b.Tank.Weapon != 0
	}).Collect()

	for _, b := range tanks {
		if err := s.armory.Fire(b); err != nil {
			return err
		}
		b.Tank.Cooldown = s.interval.Seconds()
	}
	return nil
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
