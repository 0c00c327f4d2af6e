package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full arena configuration.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Tank      TankConfig      `yaml:"tank"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Placement PlacementConfig `yaml:"placement"`
	Log       LogConfig       `yaml:"log"`
	Debug     DebugConfig     `yaml:"debug"`
}

// ArenaConfig describes the playfield and the fixed step.
type ArenaConfig struct {
	Width    float64       `yaml:"width"`
	Height   float64       `yaml:"height"`
	TickRate int           `yaml:"tick_rate"`
	Walls    []WallConfig  `yaml:"walls,omitempty"`
	Chests   int           `yaml:"chests"`
	Tanks    []SpawnConfig `yaml:"tanks,omitempty"`
}

// WallConfig is a static convex obstacle: local vertices plus a pose.
type WallConfig struct {
	Vertices [][2]float64 `yaml:"vertices"`
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Rotation float64      `yaml:"rotation,omitempty"`
}

type SpawnConfig struct {
	Name     string  `yaml:"name"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation,omitempty"`
}

type TankConfig struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	MoveSpeed       float64       `yaml:"move_speed"`
	RotationSpeed   float64       `yaml:"rotation_speed"`
	SpawnProtection time.Duration `yaml:"spawn_protection"`
	ShootInterval   time.Duration `yaml:"shoot_interval"`
	MuzzleOffset    float64       `yaml:"muzzle_offset"`
	MineOffset      float64       `yaml:"mine_offset"`
}

type WeaponsConfig struct {
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletRadius   float64 `yaml:"bullet_radius"`
	ShurikenSpeed  float64 `yaml:"shuriken_speed"`
	ShurikenRadius float64 `yaml:"shuriken_radius"`
	ShurikenBounce uint32  `yaml:"shuriken_bounce"`
	MineRadius     float64 `yaml:"mine_radius"`
	ChestSize      float64 `yaml:"chest_size"`
}

type PlacementConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Seed        string `yaml:"seed,omitempty"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// TickInterval is the fixed simulation step.
func (c ArenaConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Default returns a ready-to-run configuration: a 1280x720 arena with the
// default wall quad and one tank at the centre.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:    1280,
			Height:   720,
			TickRate: 60,
			Walls: []WallConfig{{
				Vertices: [][2]float64{{0, 20}, {20, 120}, {120, 100}, {100, 0}},
				X:        100,
				Y:        100,
			}},
			Chests: 1,
			Tanks:  []SpawnConfig{{Name: "player"}},
		},
		Tank: TankConfig{
			Width:           60,
			Height:          80,
			MoveSpeed:       200,
			RotationSpeed:   3,
			SpawnProtection: 3 * time.Second,
			ShootInterval:   300 * time.Millisecond,
			MuzzleOffset:    55,
			MineOffset:      -55,
		},
		Weapons: WeaponsConfig{
			BulletSpeed:    1000,
			BulletRadius:   3,
			ShurikenSpeed:  400,
			ShurikenRadius: 5,
			ShurikenBounce: 3,
			MineRadius:     20,
			ChestSize:      30,
		},
		Placement: PlacementConfig{MaxAttempts: 1000},
		Log:       LogConfig{Level: "info", Encoding: "json"},
		Debug:     DebugConfig{Enabled: false, Addr: "127.0.0.1:8089"},
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML decodes YAML over Default. Unknown keys are rejected.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena size %gx%g", c.Arena.Width, c.Arena.Height)
	check(c.Arena.TickRate > 0, "tick_rate %d", c.Arena.TickRate)
	check(c.Arena.Chests >= 0, "chests %d", c.Arena.Chests)
	for i, w := range c.Arena.Walls {
		check(len(w.Vertices) >= 3, "wall %d has %d vertices", i, len(w.Vertices))
	}
	check(c.Tank.Width > 0 && c.Tank.Height > 0, "tank size %gx%g", c.Tank.Width, c.Tank.Height)
	check(c.Tank.MoveSpeed >= 0, "tank move_speed %g", c.Tank.MoveSpeed)
	check(c.Tank.RotationSpeed >= 0, "tank rotation_speed %g", c.Tank.RotationSpeed)
	check(c.Tank.SpawnProtection >= 0, "tank spawn_protection %s", c.Tank.SpawnProtection)
	check(c.Tank.ShootInterval >= 0, "tank shoot_interval %s", c.Tank.ShootInterval)
	check(c.Weapons.BulletRadius > 0, "bullet_radius %g", c.Weapons.BulletRadius)
	check(c.Weapons.ShurikenRadius > 0, "shuriken_radius %g", c.Weapons.ShurikenRadius)
	check(c.Weapons.MineRadius > 0, "mine_radius %g", c.Weapons.MineRadius)
	check(c.Weapons.ChestSize > 0, "chest_size %g", c.Weapons.ChestSize)
	check(c.Placement.MaxAttempts > 0, "placement max_attempts %d", c.Placement.MaxAttempts)
	switch c.Log.Encoding {
	case "json", "console":
	default:
		check(false, "log encoding %q", c.Log.Encoding)
	}
	check(!c.Debug.Enabled || c.Debug.Addr != "", "debug addr is empty")

	return errors.Join(errs...)
}
