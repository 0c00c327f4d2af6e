package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/internal/core/collision"
	"github.com/zeusync/arena/pkg/geometry"
)

func newBody(t *testing.T, kind Kind, tags Tag, at geometry.Vec2) *Body {
	t.Helper()
	s, err := collision.NewRectShape(10, 10)
	require.NoError(t, err)
	return &Body{
		Kind:     kind,
		Tags:     tags,
		Pose:     geometry.At(at),
		Collider: &collision.Collider{Shape: s},
	}
}

func TestSpawnBindsColliderAndPose(t *testing.T) {
	r := NewRegistry()
	b := newBody(t, KindWall, TagSolid, geometry.V(50, 0))

	id, err := r.Spawn(b)
	require.NoError(t, err)
	assert.Equal(t, EntityID(1), id)
	assert.Equal(t, uint64(id), b.Collider.Owner)
	assert.Equal(t, b.Pose, b.LastValidPose)

	p, _ := b.Collider.Shape.Polygon()
	assert.Equal(t, geometry.V(45, 5), p.Vertices()[0])

	_, err = r.Spawn(b)
	assert.ErrorIs(t, err, ErrAlreadySpawned)

	_, err = r.Spawn(&Body{Kind: KindWall})
	assert.ErrorIs(t, err, ErrMissingCollider)
}

func TestQueryFiltersAndKeepsSpawnOrder(t *testing.T) {
	r := NewRegistry()
	wall, _ := r.Spawn(newBody(t, KindWall, TagSolid, geometry.V(0, 0)))
	tank, _ := r.Spawn(newBody(t, KindTank, TagSolid|TagDynamic, geometry.V(20, 0)))
	chest, _ := r.Spawn(newBody(t, KindChest, 0, geometry.V(40, 0)))

	ids := func(bs []*Body) []EntityID {
		out := make([]EntityID, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.ID())
		}
		return out
	}

	assert.Equal(t, []EntityID{wall, tank, chest}, ids(r.Query().Collect()))
	assert.Equal(t, []EntityID{wall, tank}, ids(r.Query(WithTag(TagSolid)).Collect()))
	assert.Equal(t, []EntityID{tank}, ids(r.Query(WithTag(TagSolid|TagDynamic)).Collect()))
	assert.Equal(t, []EntityID{chest}, ids(r.Query(Without(WithTag(TagSolid))).Collect()))
}

func TestDestroyIsDeferredUntilFlush(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Spawn(newBody(t, KindWall, TagSolid, geometry.V(0, 0)))
	b, _ := r.Spawn(newBody(t, KindWall, TagSolid, geometry.V(20, 0)))

	require.NoError(t, r.Destroy(a))
	assert.ErrorIs(t, r.Destroy(a), ErrEntityNotFound)

	_, ok := r.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	assert.Equal(t, []EntityID{a}, r.Flush())
	assert.Empty(t, r.Flush())

	got, ok := r.Get(b)
	require.True(t, ok)
	assert.Equal(t, b, got.ID())
}
