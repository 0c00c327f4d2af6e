package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGuardsZeroLength(t *testing.T) {
	n, ok := Vec2{}.Normalize()
	require.False(t, ok)
	assert.Equal(t, Vec2{}, n)

	n, ok = V(3, 4).Normalize()
	require.True(t, ok)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	_, ok = V(math.NaN(), 1).Normalize()
	assert.False(t, ok)
}

func TestReflect(t *testing.T) {
	// Moving right into a wall whose normal points left.
	r := V(10, 3).Reflect(V(-1, 0))
	assert.InDelta(t, -10, r.X, 1e-12)
	assert.InDelta(t, 3, r.Y, 1e-12)
}

func TestPoseApply(t *testing.T) {
	p := Pose{Position: V(10, 0), Rotation: math.Pi / 2}
	w := p.Apply(V(1, 0))
	assert.InDelta(t, 10, w.X, 1e-12)
	assert.InDelta(t, 1, w.Y, 1e-12)

	f := p.Forward()
	assert.InDelta(t, -1, f.X, 1e-12)
	assert.InDelta(t, 0, f.Y, 1e-12)
}

func TestPoseRotateWraps(t *testing.T) {
	p := Pose{Rotation: 3}.Rotate(1)
	assert.InDelta(t, 4-2*math.Pi, p.Rotation, 1e-12)
	assert.Greater(t, p.Rotation, -math.Pi)
}
