package placement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/pkg/geometry"
)

func wall(t *testing.T, id uint64, w, h float64, at geometry.Vec2) *collision.Collider {
	t.Helper()
	s, err := collision.NewRectShape(w, h)
	require.NoError(t, err)
	return collision.NewCollider(id, s, geometry.At(at))
}

func TestPlaceAvoidsSolids(t *testing.T) {
	s, err := NewSampler(Config{HalfWidth: 100, HalfHeight: 100, Seed: "placement"})
	require.NoError(t, err)

	// Cover everything except the band x in (60, 100).
	obstacles := []*collision.Collider{wall(t, 1, 160, 200, geometry.V(-20, 0))}
	chest, err := collision.NewRectShape(10, 10)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		p, err := s.Place(chest, obstacles)
		require.NoError(t, err)

		trial := chest.Clone()
		trial.Refresh(geometry.At(p))
		assert.False(t, collision.Intersects(trial, obstacles[0].Shape), "placed at %v", p)
		assert.GreaterOrEqual(t, p.X, 60.0)
		assert.LessOrEqual(t, p.X, 100.0)
		assert.LessOrEqual(t, p.Y, 100.0)
		assert.GreaterOrEqual(t, p.Y, -100.0)
	}
}

func TestPlaceDoesNotMutateCandidate(t *testing.T) {
	s, err := NewSampler(Config{HalfWidth: 50, HalfHeight: 50, Seed: "x"})
	require.NoError(t, err)
	chest, err := collision.NewRectShape(4, 4)
	require.NoError(t, err)

	_, err = s.Place(chest, nil)
	require.NoError(t, err)
	p, _ := chest.Polygon()
	assert.Equal(t, geometry.V(-2, 2), p.Vertices()[0])
}

func TestPlaceIsBounded(t *testing.T) {
	s, err := NewSampler(Config{HalfWidth: 10, HalfHeight: 10, MaxAttempts: 25, Seed: "full"})
	require.NoError(t, err)

	chest, err := collision.NewCircleShape(1)
	require.NoError(t, err)
	_, err = s.Place(chest, []*collision.Collider{wall(t, 1, 100, 100, geometry.V(0, 0))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacement))

	var pe *PlacementError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 25, pe.Attempts)
}

func TestSeededSamplersAreReproducible(t *testing.T) {
	a, err := NewSampler(Config{HalfWidth: 300, HalfHeight: 200, Seed: "arena-1"})
	require.NoError(t, err)
	b, err := NewSampler(Config{HalfWidth: 300, HalfHeight: 200, Seed: "arena-1"})
	require.NoError(t, err)
	shape, err := collision.NewCircleShape(2)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		pa, err := a.Place(shape, nil)
		require.NoError(t, err)
		pb, err := b.Place(shape, nil)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}

func TestNewSamplerRejectsEmptyBounds(t *testing.T) {
	_, err := NewSampler(Config{HalfWidth: 0, HalfHeight: 10})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
