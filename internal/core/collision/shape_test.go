package collision

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/pkg/geometry"
)

func square(t *testing.T, size float64, at geometry.Vec2) Shape {
	t.Helper()
	s, err := NewRectShape(size, size)
	require.NoError(t, err)
	s.Refresh(geometry.At(at))
	return s
}

func circle(t *testing.T, r float64, at geometry.Vec2) Shape {
	t.Helper()
	s, err := NewCircleShape(r)
	require.NoError(t, err)
	s.Refresh(geometry.At(at))
	return s
}

func TestNewPolygonRejectsDegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		vertices []geometry.Vec2
	}{
		{"empty", nil},
		{"two vertices", []geometry.Vec2{geometry.V(0, 0), geometry.V(1, 0)}},
		{"zero length edge", []geometry.Vec2{geometry.V(0, 0), geometry.V(0, 0), geometry.V(1, 1), geometry.V(1, 0)}},
		{"collinear", []geometry.Vec2{geometry.V(0, 0), geometry.V(1, 0), geometry.V(2, 0)}},
		{"concave", []geometry.Vec2{geometry.V(0, 0), geometry.V(4, 0), geometry.V(1, 1), geometry.V(0, 4)}},
		{"nan vertex", []geometry.Vec2{geometry.V(math.NaN(), 0), geometry.V(1, math.NaN()), geometry.V(0, 1)}},
		{"infinite vertex", []geometry.Vec2{geometry.V(0, 0), geometry.V(math.Inf(1), 0), geometry.V(0, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.vertices...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "polygon", cfgErr.Shape)
		})
	}
}

func TestNewCircleRejectsNonPositiveRadius(t *testing.T) {
	for _, r := range []float64{0, -1} {
		_, err := NewCircle(r)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestPolygonRefreshAppliesPose(t *testing.T) {
	p, err := NewPolygon(geometry.V(0, 20), geometry.V(20, 120), geometry.V(120, 100), geometry.V(100, 0))
	require.NoError(t, err)
	assert.InDelta(t, 120, p.Width(), 1e-12)
	assert.InDelta(t, 120, p.Height(), 1e-12)

	p.Refresh(geometry.At(geometry.V(100, 100)))
	assert.Equal(t, geometry.V(100, 120), p.Vertices()[0])
	assert.Equal(t, geometry.V(0, 20), p.Relative()[0])
}

func TestCircleRefreshTracksTranslation(t *testing.T) {
	c, err := NewCircle(3)
	require.NoError(t, err)
	c.Refresh(geometry.Pose{Position: geometry.V(4, -2), Rotation: 1})
	assert.Equal(t, geometry.V(4, -2), c.Center())
}

func TestCloneDoesNotShareVertices(t *testing.T) {
	s := square(t, 10, geometry.V(0, 0))
	c := s.Clone()
	c.Refresh(geometry.At(geometry.V(50, 50)))

	orig, _ := s.Polygon()
	moved, _ := c.Polygon()
	assert.NotEqual(t, orig.Vertices()[0], moved.Vertices()[0])
}
