package arena

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zeusync/arena/internal/config"
	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/internal/core/events"
	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/models"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/placement"
	"github.com/zeusync/arena/internal/core/systems"
	"github.com/zeusync/arena/internal/core/systems/physics"
	"github.com/zeusync/arena/pkg/geometry"
	"github.com/zeusync/arena/pkg/sequence"
)

var ErrUnknownTank = errors.New("unknown tank")

// World owns the simulation: bodies, the system pipeline and the event bus.
//
// Every exported method is safe to call from any goroutine. Ticks themselves
// are strictly sequential.
type World struct {
	mu sync.RWMutex

	cfg      config.Config
	log      log.Log
	bus      bus.EventBus
	registry *models.Registry
	pipeline *systems.Pipeline
	sampler  *placement.Sampler

	tick     uint64
	paused   bool
	snapshot Snapshot
	// pending holds events raised under mu; they are published after unlock.
	pending []bus.Event
}

// NewWorld builds a world from cfg and spawns the configured walls, tanks and
// chests. Chests are placed at random free positions.
func NewWorld(cfg config.Config, logger log.Log) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sampler, err := placement.NewSampler(placement.Config{
		HalfWidth:   cfg.Arena.Width / 2,
		HalfHeight:  cfg.Arena.Height / 2,
		MaxAttempts: cfg.Placement.MaxAttempts,
		Seed:        cfg.Placement.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	w := &World{
		cfg:      cfg,
		log:      logger.Named("world"),
		bus:      bus.New(),
		registry: models.NewRegistry(),
		sampler:  sampler,
	}

	w.pipeline, err = systems.NewPipeline(
		physics.NewDrive(physics.DriveSettings{MoveSpeed: cfg.Tank.MoveSpeed, RotationSpeed: cfg.Tank.RotationSpeed}),
		physics.Integrate{},
		physics.Timers{},
		physics.NewFire(armory{w: w}, cfg.Tank.ShootInterval),
		physics.Refresh{},
		physics.Tracker{},
		physics.NewHits(cfg.Tank.SpawnProtection),
		physics.Bouncer{},
		physics.WallImpacts{},
		physics.Pickups{},
		physics.Rollback{},
		physics.Flush{},
	)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	for i, wc := range cfg.Arena.Walls {
		vs := make([]geometry.Vec2, len(wc.Vertices))
		for j, v := range wc.Vertices {
			vs[j] = geometry.V(v[0], v[1])
		}
		pose := geometry.Pose{Position: geometry.V(wc.X, wc.Y), Rotation: wc.Rotation}
		if _, err = w.spawnWall(vs, pose); err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
	}
	for _, tc := range cfg.Arena.Tanks {
		pose := geometry.Pose{Position: geometry.V(tc.X, tc.Y), Rotation: tc.Rotation}
		if _, err = w.spawnTank(tc.Name, pose); err != nil {
			return nil, fmt.Errorf("tank %q: %w", tc.Name, err)
		}
	}
	for i := 0; i < cfg.Arena.Chests; i++ {
		if _, err = w.spawnChest(randomWeapon(w.sampler)); err != nil {
			return nil, fmt.Errorf("chest %d: %w", i, err)
		}
	}

	w.snapshot = w.capture()
	w.publish(w.takePending())
	return w, nil
}

// Bus exposes the world's event bus for subscribers. Events are delivered
// after the world lock is released, so handlers may call back into World.
func (w *World) Bus() bus.EventBus { return w.bus }

// Tick advances the simulation by dt seconds and refreshes the snapshot.
// A paused world does nothing.
func (w *World) Tick(dt float64) error {
	w.mu.Lock()
	defer w.unlockAndPublish()

	if w.paused {
		return nil
	}

	w.tick++
	ctx := &systems.Context{
		Tick:      w.tick,
		DeltaTime: dt,
		Registry:  w.registry,
		Log:       w.log,
	}
	err := w.pipeline.Run(ctx)
	w.pending = append(w.pending, ctx.Drain()...)
	w.snapshot = w.capture()
	return err
}

func (w *World) FrameCount() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tick
}

func (w *World) IsPaused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.paused
}

func (w *World) SetPaused(paused bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.paused = paused
}

// Snapshot returns the state as of the last tick.
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshot
}

// SetInput replaces the drive command of a tank.
func (w *World) SetInput(id models.EntityID, in models.Input) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.registry.Get(id)
	if !ok || b.Tank == nil {
		return fmt.Errorf("%w: %d", ErrUnknownTank, id)
	}
	b.Tank.Input = in
	return nil
}

// FindBody looks a live body up by name.
func (w *World) FindBody(name string) (models.EntityID, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	b, ok := w.registry.Query().Find(func(b *models.Body) bool { return b.Name == name })
	if !ok {
		return models.NoEntity, false
	}
	return b.ID(), true
}

func (w *World) SpawnTank(name string, pose geometry.Pose) (models.EntityID, error) {
	w.mu.Lock()
	defer w.unlockAndPublish()
	return w.spawnTank(name, pose)
}

func (w *World) SpawnWall(vertices []geometry.Vec2, pose geometry.Pose) (models.EntityID, error) {
	w.mu.Lock()
	defer w.unlockAndPublish()
	return w.spawnWall(vertices, pose)
}

// SpawnChest drops a chest holding weapon at a random free position.
func (w *World) SpawnChest(weapon models.Weapon) (models.EntityID, error) {
	w.mu.Lock()
	defer w.unlockAndPublish()
	return w.spawnChest(weapon)
}

func (w *World) spawnTank(name string, pose geometry.Pose) (models.EntityID, error) {
	shape, err := collision.NewRectShape(w.cfg.Tank.Width, w.cfg.Tank.Height)
	if err != nil {
		return models.NoEntity, err
	}
	return w.spawn(&models.Body{
		Name: name,
		Kind: models.KindTank,
		Tags: models.TagSolid | models.TagDynamic,
		Pose: pose,
		Tank: &models.Tank{
			Weapon:     models.WeaponShuriken,
			SpawnPose:  pose,
			Protection: w.cfg.Tank.SpawnProtection.Seconds(),
		},
	}, shape)
}

func (w *World) spawnWall(vertices []geometry.Vec2, pose geometry.Pose) (models.EntityID, error) {
	shape, err := collision.NewPolygonShape(vertices...)
	if err != nil {
		return models.NoEntity, err
	}
	return w.spawn(&models.Body{Kind: models.KindWall, Tags: models.TagSolid, Pose: pose}, shape)
}

func (w *World) spawnChest(weapon models.Weapon) (models.EntityID, error) {
	size := w.cfg.Weapons.ChestSize
	shape, err := collision.NewRectShape(size, size)
	if err != nil {
		return models.NoEntity, err
	}

	solids := w.registry.Query(models.WithTag(models.TagSolid), models.WithCollider())
	obstacles := sequence.Map(solids, func(b *models.Body) *collision.Collider { return b.Collider }).Collect()
	at, err := w.sampler.Place(shape, obstacles)
	if err != nil {
		return models.NoEntity, err
	}
	return w.spawn(&models.Body{
		Kind:  models.KindChest,
		Pose:  geometry.At(at),
		Chest: &models.Chest{Weapon: weapon},
	}, shape)
}

func (w *World) spawn(b *models.Body, shape collision.Shape) (models.EntityID, error) {
	b.Collider = collision.NewCollider(0, shape, b.Pose)
	id, err := w.registry.Spawn(b)
	if err != nil {
		return models.NoEntity, err
	}

	w.log.Info("spawn",
		log.Uint64("entity", uint64(id)),
		log.Stringer("kind", b.Kind),
		log.String("name", b.Name),
		log.Float64("x", b.Pose.Position.X),
		log.Float64("y", b.Pose.Position.Y),
	)
	w.pending = append(w.pending, bus.NewEvent(events.TypeSpawn, "world", events.Spawn{Entity: id, Kind: b.Kind, Pose: b.Pose}))
	return id, nil
}

func (w *World) takePending() []bus.Event {
	out := w.pending
	w.pending = nil
	return out
}

// unlockAndPublish releases the write lock, then delivers the events queued
// while it was held.
func (w *World) unlockAndPublish() {
	queued := w.takePending()
	w.mu.Unlock()
	w.publish(queued)
}

// publish delivers events in order. Handler failures are logged and never
// reach the caller.
func (w *World) publish(queued []bus.Event) {
	for _, e := range queued {
		if err := w.bus.Publish(e); err != nil {
			w.log.Warn("event handler failed", log.String("event", e.Type()), log.Error(err))
		}
	}
}

func randomWeapon(s *placement.Sampler) models.Weapon {
	weapons := [...]models.Weapon{models.WeaponBullet, models.WeaponMine, models.WeaponShuriken}
	return weapons[s.IntN(len(weapons))]
}
