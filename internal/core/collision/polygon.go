package collision

import (
	"math"

	"github.com/zeusync/arena/pkg/geometry"
)

// Polygon is a convex polygon with vertices given in local space. World-space
// vertices are cached by Refresh and are stale until it is called.
type Polygon struct {
	relative []geometry.Vec2
	vertices []geometry.Vec2
	width    float64
	height   float64
}

// NewPolygon builds a convex polygon from local-space vertices in a consistent
// winding. The world cache starts equal to the local vertices (identity pose).
func NewPolygon(vertices ...geometry.Vec2) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, configErr("polygon", "need at least 3 vertices, got %d", len(vertices))
	}

	for i, v := range vertices {
		if !finite(v.X) || !finite(v.Y) {
			return Polygon{}, configErr("polygon", "vertex %d is not finite: %v", i, v)
		}
	}

	var sign float64
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		c := vertices[(i+2)%len(vertices)]
		if b.Sub(a).IsZero() {
			return Polygon{}, configErr("polygon", "edge %d has zero length", i)
		}
		cross := b.Sub(a).X*c.Sub(b).Y - b.Sub(a).Y*c.Sub(b).X
		if math.Abs(cross) <= geometry.Epsilon {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return Polygon{}, configErr("polygon", "vertices are not convex at %d", (i+1)%len(vertices))
		}
	}
	if sign == 0 {
		return Polygon{}, configErr("polygon", "vertices are collinear")
	}

	p := Polygon{
		relative: append([]geometry.Vec2(nil), vertices...),
		vertices: append([]geometry.Vec2(nil), vertices...),
	}
	p.width, p.height = extent(vertices)
	return p, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Rect builds an axis-aligned w×h rectangle centred on the local origin.
func Rect(w, h float64) (Polygon, error) {
	hw, hh := w/2, h/2
	return NewPolygon(
		geometry.V(-hw, hh),
		geometry.V(hw, hh),
		geometry.V(hw, -hh),
		geometry.V(-hw, -hh),
	)
}

// Refresh recomputes world vertices from the pose.
func (p *Polygon) Refresh(pose geometry.Pose) {
	for i, v := range p.relative {
		p.vertices[i] = pose.Apply(v)
	}
}

// Vertices returns the world-space vertices as of the last Refresh.
func (p Polygon) Vertices() []geometry.Vec2 { return p.vertices }

// Relative returns the local-space vertices.
func (p Polygon) Relative() []geometry.Vec2 { return p.relative }

// Width and Height are the local axis-aligned extents.
func (p Polygon) Width() float64  { return p.width }
func (p Polygon) Height() float64 { return p.height }

func (p Polygon) clone() Polygon {
	p.relative = append([]geometry.Vec2(nil), p.relative...)
	p.vertices = append([]geometry.Vec2(nil), p.vertices...)
	return p
}

// edge returns the world-space segment from vertex i to vertex i+1.
func (p Polygon) edge(i int) (a, b geometry.Vec2) {
	return p.vertices[i], p.vertices[(i+1)%len(p.vertices)]
}

func (p Polygon) project(axis geometry.Vec2) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, v := range p.vertices {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

func (p Polygon) closestVertex(point geometry.Vec2) geometry.Vec2 {
	var closest geometry.Vec2
	best := math.MaxFloat64
	for _, v := range p.vertices {
		if d := v.DistanceSquared(point); d < best {
			best = d
			closest = v
		}
	}
	return closest
}

// separatedOnEdges reports whether any edge normal of p separates p from the
// interval produced by other.
func (p Polygon) separatedOnEdges(other func(axis geometry.Vec2) (float64, float64)) bool {
	for i := range p.vertices {
		a, b := p.edge(i)
		axis, ok := b.Sub(a).Perp().Normalize()
		if !ok {
			continue
		}
		if disjoint(p.project, other, axis) {
			return true
		}
	}
	return false
}

func extent(vs []geometry.Vec2) (w, h float64) {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, v := range vs {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return maxX - minX, maxY - minY
}
