package arena

import (
	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/internal/core/models"
)

// Snapshot is the externally visible state after a tick.
type Snapshot struct {
	Tick   uint64         `json:"tick"`
	Bodies []BodySnapshot `json:"bodies"`
}

type BodySnapshot struct {
	ID         uint64        `json:"id"`
	Name       string        `json:"name,omitempty"`
	Kind       string        `json:"kind"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Rotation   float64       `json:"rotation"`
	Intersects bool          `json:"intersects"`
	Shape      ShapeSnapshot `json:"shape"`
	Deaths     int           `json:"deaths,omitempty"`
	Weapon     string        `json:"weapon,omitempty"`
	Bounces    *uint32       `json:"bounces,omitempty"`
}

// ShapeSnapshot carries world-space geometry: vertices for polygons, radius
// for circles.
type ShapeSnapshot struct {
	Kind     string       `json:"kind"`
	Vertices [][2]float64 `json:"vertices,omitempty"`
	Radius   float64      `json:"radius,omitempty"`
}

// capture must be called with the world lock held.
func (w *World) capture() Snapshot {
	s := Snapshot{Tick: w.tick}
	w.registry.Query(models.WithCollider()).Each(func(b *models.Body) {
		bs := BodySnapshot{
			ID:         uint64(b.ID()),
			Name:       b.Name,
			Kind:       b.Kind.String(),
			X:          b.Pose.Position.X,
			Y:          b.Pose.Position.Y,
			Rotation:   b.Pose.Rotation,
			Intersects: b.Intersects,
			Shape:      shapeSnapshot(b.Collider.Shape),
		}
		if b.Tank != nil {
			bs.Deaths = b.Tank.Deaths
			bs.Weapon = b.Tank.Weapon.String()
		}
		if b.Bounce != nil {
			budget := b.Bounce.Budget
			bs.Bounces = &budget
		}
		s.Bodies = append(s.Bodies, bs)
	})
	return s
}

func shapeSnapshot(shape collision.Shape) ShapeSnapshot {
	out := ShapeSnapshot{Kind: shape.Kind().String()}
	if p, ok := shape.Polygon(); ok {
		for _, v := range p.Vertices() {
			out.Vertices = append(out.Vertices, [2]float64{v.X, v.Y})
		}
	}
	if c, ok := shape.Circle(); ok {
		out.Radius = c.Radius()
	}
	return out
}
