package collision

import (
	"math"

	"github.com/zeusync/arena/pkg/geometry"
)

// Circle is a circle whose world centre follows the owning pose's translation.
type Circle struct {
	radius float64
	center geometry.Vec2
}

func NewCircle(radius float64) (Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Circle{}, configErr("circle", "radius must be positive and finite, got %v", radius)
	}
	return Circle{radius: radius}, nil
}

func (c *Circle) Refresh(pose geometry.Pose) { c.center = pose.Position }

func (c Circle) Radius() float64       { return c.radius }
func (c Circle) Center() geometry.Vec2 { return c.center }
func (c Circle) Width() float64        { return 2 * c.radius }
func (c Circle) Height() float64       { return 2 * c.radius }

// project expects a unit axis.
func (c Circle) project(axis geometry.Vec2) (lo, hi float64) {
	d := c.center.Dot(axis)
	lo, hi = d-c.radius, d+c.radius
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// closestOnSegment returns the point of segment ab nearest to the circle centre
// and its distance.
func (c Circle) closestOnSegment(a, b geometry.Vec2) (geometry.Vec2, float64) {
	edge := b.Sub(a)
	l := edge.LengthSquared()
	if l <= geometry.Epsilon*geometry.Epsilon {
		return a, c.center.Distance(a)
	}
	t := edge.Dot(c.center.Sub(a)) / l
	var p geometry.Vec2
	switch {
	case t <= 0:
		p = a
	case t >= 1:
		p = b
	default:
		p = a.Add(edge.Scale(t))
	}
	return p, c.center.Distance(p)
}
