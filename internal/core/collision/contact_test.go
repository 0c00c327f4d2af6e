package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/arena/pkg/geometry"
)

func TestContactVectorPolygonCircleUsesNearestEdge(t *testing.T) {
	sq := square(t, 10, geometry.V(0, 0))
	c := circle(t, 1, geometry.V(5.5, 1))

	// Vertices run (-5,5) (5,5) (5,-5) (-5,-5): the right edge goes downwards.
	want := geometry.V(0, -10)
	assert.Equal(t, want, ContactVector(sq, c))
	assert.Equal(t, want, ContactVector(c, sq))
}

func TestContactVectorCircleCircleIsRimPerpendicular(t *testing.T) {
	a := circle(t, 2, geometry.V(1, 0))
	b := circle(t, 2, geometry.V(4, 0))

	// Rim point of a towards b is (3,0); its perpendicular is (0,3).
	got := ContactVector(a, b)
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 3, got.Y, 1e-12)
}

func TestContactVectorCoincidentCirclesIsZero(t *testing.T) {
	a := circle(t, 2, geometry.V(1, 1))
	b := circle(t, 2, geometry.V(1, 1))
	assert.True(t, ContactVector(a, b).IsZero())
}

func TestContactVectorPolygonPolygonReturnsOtherEdge(t *testing.T) {
	a := square(t, 10, geometry.V(0, 0))
	b := square(t, 4, geometry.V(6, 0))

	got := ContactVector(a, b)
	bp, _ := b.Polygon()
	var found bool
	for i := range bp.Vertices() {
		s, e := bp.edge(i)
		if e.Sub(s) == got {
			found = true
		}
	}
	assert.True(t, found, "contact vector %v is not an edge of the other polygon", got)
	// Same-orientation squares: the closest edge vector points the same way as a's top edge.
	assert.Equal(t, geometry.V(4, 0), got)
}

func TestColliderDelegatesToShape(t *testing.T) {
	s, _ := NewRectShape(10, 10)
	c, _ := NewCircleShape(1)
	a := NewCollider(1, s, geometry.At(geometry.V(0, 0)))
	b := NewCollider(2, c, geometry.At(geometry.V(5, 0)))

	assert.True(t, a.Intersects(b))
	assert.Equal(t, geometry.V(0, -10), a.ContactVector(b))

	b.Refresh(geometry.At(geometry.V(10, 0)))
	assert.False(t, b.Intersects(a))
}
