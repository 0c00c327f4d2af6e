package collision

import (
	"fmt"

	"github.com/zeusync/arena/pkg/geometry"
)

// Kind tags which variant a Shape holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPolygon
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	default:
		return "invalid"
	}
}

// Shape is a closed union over Polygon and Circle. Every operation switches on
// Kind exhaustively; there is no shape interface to implement.
type Shape struct {
	kind    Kind
	polygon Polygon
	circle  Circle
}

func PolygonShape(p Polygon) Shape { return Shape{kind: KindPolygon, polygon: p} }
func CircleShape(c Circle) Shape   { return Shape{kind: KindCircle, circle: c} }

// NewPolygonShape is NewPolygon wrapped in a Shape.
func NewPolygonShape(vertices ...geometry.Vec2) (Shape, error) {
	p, err := NewPolygon(vertices...)
	if err != nil {
		return Shape{}, err
	}
	return PolygonShape(p), nil
}

// NewCircleShape is NewCircle wrapped in a Shape.
func NewCircleShape(radius float64) (Shape, error) {
	c, err := NewCircle(radius)
	if err != nil {
		return Shape{}, err
	}
	return CircleShape(c), nil
}

// NewRectShape is Rect wrapped in a Shape.
func NewRectShape(w, h float64) (Shape, error) {
	p, err := Rect(w, h)
	if err != nil {
		return Shape{}, err
	}
	return PolygonShape(p), nil
}

func (s Shape) Kind() Kind { return s.kind }

func (s Shape) Polygon() (Polygon, bool) { return s.polygon, s.kind == KindPolygon }
func (s Shape) Circle() (Circle, bool)   { return s.circle, s.kind == KindCircle }

// Refresh recomputes world geometry from pose. It must run before any query in
// the same tick; nothing checks that it did.
func (s *Shape) Refresh(pose geometry.Pose) {
	switch s.kind {
	case KindPolygon:
		s.polygon.Refresh(pose)
	case KindCircle:
		s.circle.Refresh(pose)
	default:
		panic(fmt.Sprintf("collision: refresh on %s shape", s.kind))
	}
}

// Clone returns a copy that shares no vertex storage with s.
func (s Shape) Clone() Shape {
	if s.kind == KindPolygon {
		s.polygon = s.polygon.clone()
	}
	return s
}

// Size returns the local axis-aligned width and height.
func (s Shape) Size() (w, h float64) {
	switch s.kind {
	case KindPolygon:
		return s.polygon.Width(), s.polygon.Height()
	case KindCircle:
		return s.circle.Width(), s.circle.Height()
	default:
		return 0, 0
	}
}
