package manager

import (
	"snake-walk/game/entity"
	"snake-walk/game/types"
)

type CollisionManager struct {
	bounds types.Size
}

func NewCollisionManager(bounds types.Size) *CollisionManager {
	return &CollisionManager{
		bounds: bounds,
	}
}

// SetBounds updates the surface size; the host may resize between ticks.
func (cm *CollisionManager) SetBounds(bounds types.Size) {
	cm.bounds = bounds
}

func (cm *CollisionManager) Bounds() types.Size {
	return cm.bounds
}

// IsWallCollision reports whether pos is past the far edges of the surface
// or exactly on its origin edges.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return pos.X >= cm.bounds.Width ||
		pos.Y >= cm.bounds.Height ||
		pos.X == 0 ||
		pos.Y == 0
}

// CheckHead tests the min corner of the snake's head segment.
func (cm *CollisionManager) CheckHead(snake *entity.Snake) bool {
	return cm.IsWallCollision(snake.Head().Min)
}
