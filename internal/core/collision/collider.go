package collision

import "github.com/zeusync/arena/pkg/geometry"

// Collider binds a Shape to the body that owns it.
type Collider struct {
	Owner uint64
	Shape Shape
}

// NewCollider takes ownership of shape and refreshes it at pose.
func NewCollider(owner uint64, shape Shape, pose geometry.Pose) *Collider {
	c := &Collider{Owner: owner, Shape: shape}
	c.Refresh(pose)
	return c
}

func (c *Collider) Refresh(pose geometry.Pose) { c.Shape.Refresh(pose) }

func (c *Collider) Intersects(other *Collider) bool {
	return Intersects(c.Shape, other.Shape)
}

func (c *Collider) ContactVector(other *Collider) geometry.Vec2 {
	return ContactVector(c.Shape, other.Shape)
}
