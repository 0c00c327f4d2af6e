package collision

import (
	"fmt"
	"math"

	"github.com/zeusync/arena/pkg/geometry"
)

// ContactVector returns an approximate contact direction of self against
// other, used only to reflect velocities. It is not a penetration normal:
//
//   - polygon/polygon: the edge of other whose edge vector is closest (squared
//     difference) to some edge vector of self;
//   - circle/circle: the perpendicular of the point on self's rim facing other;
//   - polygon/circle in either order: the polygon edge whose segment lies
//     closest to the circle centre.
//
// Coincident circle centres yield the zero vector.
func ContactVector(self, other Shape) geometry.Vec2 {
	switch self.kind {
	case KindPolygon:
		switch other.kind {
		case KindPolygon:
			return polygonPolygonContact(self.polygon, other.polygon)
		case KindCircle:
			return polygonCircleContact(self.polygon, other.circle)
		}
	case KindCircle:
		switch other.kind {
		case KindPolygon:
			return polygonCircleContact(other.polygon, self.circle)
		case KindCircle:
			return circleCircleContact(self.circle, other.circle)
		}
	}
	panic(fmt.Sprintf("collision: contact vector %s with %s", self.kind, other.kind))
}

func polygonPolygonContact(self, other Polygon) geometry.Vec2 {
	var best geometry.Vec2
	bestDist := math.MaxFloat64
	for i := range self.vertices {
		a, b := self.edge(i)
		e := b.Sub(a)
		for j := range other.vertices {
			c, d := other.edge(j)
			f := d.Sub(c)
			if dist := e.DistanceSquared(f); dist < bestDist {
				bestDist = dist
				best = f
			}
		}
	}
	return best
}

func circleCircleContact(self, other Circle) geometry.Vec2 {
	dir, ok := other.center.Sub(self.center).Normalize()
	if !ok {
		return geometry.Vec2{}
	}
	rim := self.center.Add(dir.Scale(self.radius))
	return rim.Perp()
}

func polygonCircleContact(p Polygon, c Circle) geometry.Vec2 {
	var best geometry.Vec2
	bestDist := math.MaxFloat64
	for i := range p.vertices {
		a, b := p.edge(i)
		if _, dist := c.closestOnSegment(a, b); dist < bestDist {
			bestDist = dist
			best = b.Sub(a)
		}
	}
	return best
}
