package collision

import (
	"fmt"

	"github.com/zeusync/arena/pkg/geometry"
)

type projector func(axis geometry.Vec2) (lo, hi float64)

// disjoint reports whether the two projections on axis do not overlap. Touching
// intervals count as disjoint.
func disjoint(a, b projector, axis geometry.Vec2) bool {
	minA, maxA := a(axis)
	minB, maxB := b(axis)
	return minA >= maxB || minB >= maxA
}

// Intersects reports whether a and b overlap. The result is symmetric in its
// arguments.
func Intersects(a, b Shape) bool {
	switch a.kind {
	case KindPolygon:
		switch b.kind {
		case KindPolygon:
			return polygonsIntersect(a.polygon, b.polygon)
		case KindCircle:
			return polygonCircleIntersect(a.polygon, b.circle)
		}
	case KindCircle:
		switch b.kind {
		case KindPolygon:
			return polygonCircleIntersect(b.polygon, a.circle)
		case KindCircle:
			return circlesIntersect(a.circle, b.circle)
		}
	}
	panic(fmt.Sprintf("collision: intersects %s with %s", a.kind, b.kind))
}

func polygonsIntersect(a, b Polygon) bool {
	if a.separatedOnEdges(b.project) {
		return false
	}
	return !b.separatedOnEdges(a.project)
}

func circlesIntersect(a, b Circle) bool {
	return a.center.Distance(b.center) < a.radius+b.radius
}

func polygonCircleIntersect(p Polygon, c Circle) bool {
	if p.separatedOnEdges(c.project) {
		return false
	}

	axis, ok := p.closestVertex(c.center).Sub(c.center).Normalize()
	if ok && disjoint(p.project, c.project, axis) {
		return false
	}
	return true
}
