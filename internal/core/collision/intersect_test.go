package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/pkg/geometry"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b func(t *testing.T) Shape
		want bool
	}{
		{
			name: "squares apart",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return square(t, 10, geometry.V(20, 0)) },
			want: false,
		},
		{
			name: "squares overlapping",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return square(t, 10, geometry.V(5, 0)) },
			want: true,
		},
		{
			name: "squares touching",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return square(t, 10, geometry.V(10, 0)) },
			want: false,
		},
		{
			name: "circles overlapping",
			a:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(9, 0)) },
			want: true,
		},
		{
			name: "circles apart",
			a:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(11, 0)) },
			want: false,
		},
		{
			name: "circles touching",
			a:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 5, geometry.V(10, 0)) },
			want: false,
		},
		{
			name: "square and far circle",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 1, geometry.V(10, 0)) },
			want: false,
		},
		{
			name: "square and circle on edge",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 1, geometry.V(5, 0)) },
			want: true,
		},
		{
			name: "circle off the corner",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 1, geometry.V(5.8, 5.8)) },
			want: false,
		},
		{
			name: "circle inside polygon",
			a:    func(t *testing.T) Shape { return square(t, 10, geometry.V(0, 0)) },
			b:    func(t *testing.T) Shape { return circle(t, 1, geometry.V(0, 0)) },
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(t), tt.b(t)
			assert.Equal(t, tt.want, Intersects(a, b))
			assert.Equal(t, tt.want, Intersects(b, a), "intersection must be symmetric")
		})
	}
}

func TestRotatedSquaresUseBothEdgeSets(t *testing.T) {
	a := square(t, 10, geometry.V(0, 0))

	// A diamond whose tip sits just past a's corner. Its x and y extents overlap a,
	// so only the diamond's own edge normals separate the two.
	b, err := NewRectShape(10, 10)
	require.NoError(t, err)
	b.Refresh(geometry.Pose{Position: geometry.V(11, 11), Rotation: math.Pi / 4})

	assert.False(t, Intersects(a, b))
	assert.False(t, Intersects(b, a))

	b.Refresh(geometry.Pose{Position: geometry.V(9, 9), Rotation: math.Pi / 4})
	assert.True(t, Intersects(a, b))
	assert.True(t, Intersects(b, a))
}

func TestIntersectsSymmetryGrid(t *testing.T) {
	tri, err := NewPolygonShape(geometry.V(0, 6), geometry.V(5, -4), geometry.V(-5, -4))
	require.NoError(t, err)
	shapes := []Shape{
		square(t, 10, geometry.V(0, 0)),
		circle(t, 4, geometry.V(0, 0)),
		tri,
	}

	for step := 0; step < 40; step++ {
		pos := geometry.V(float64(step)-20, float64(step%7)-3)
		rot := float64(step) * 0.3
		for i := range shapes {
			for j := range shapes {
				a := shapes[i].Clone()
				b := shapes[j].Clone()
				a.Refresh(geometry.Pose{})
				b.Refresh(geometry.Pose{Position: pos, Rotation: rot})
				require.Equal(t, Intersects(a, b), Intersects(b, a), "shapes %d/%d step %d", i, j, step)
			}
		}
	}
}

func TestIntersectsPanicsOnZeroShape(t *testing.T) {
	assert.Panics(t, func() { Intersects(Shape{}, square(t, 1, geometry.V(0, 0))) })
}
