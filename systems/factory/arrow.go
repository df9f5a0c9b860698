package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	"github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/gamemath"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArrow fires an arrow from owner toward the target position. The arrow
// keeps its launch velocity until it hits the player or leaves the canvas.
func CreateArrow(ecs *ecs.ECS, owner *donburi.Entry, targetX, targetY float64) *donburi.Entry {
	a := archetypes.Arrow.Spawn(ecs)

	ownerObj := components.Object.Get(owner)

	// Launch from the owner's left edge, roughly centered
	startX := ownerObj.X
	startY := ownerObj.Y + ownerObj.H/2 - config.Arrow.LaunchOffsetY
	attachObject(a, startX, startY, config.Arrow.Width, config.Arrow.Height, tags.ResolvArrow)

	// Aim from the owner's corner, not the launch point
	speedX, speedY := gamemath.Aim(ownerObj.X, ownerObj.Y, targetX, targetY, config.Arrow.AimSteps)
	components.Physics.SetValue(a, components.PhysicsData{
		SpeedX: speedX,
		SpeedY: speedY,
	})

	components.Arrow.SetValue(a, components.ArrowData{
		Damage: config.Arrow.Damage,
	})

	return a
}
