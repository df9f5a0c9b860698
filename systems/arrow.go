package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArrows moves arrows in a straight line. An arrow that touches the
// player is destroyed and deals damage unless the shield is held. Arrows
// that leave the canvas are dropped since they can never come back.
func UpdateArrows(ecs *ecs.ECS) {
	playerEntry, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}
	shielding := components.Player.Get(playerEntry).Shielding
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	var toRemove []*donburi.Entry
	var hits []int

	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY

		box := obj.Rect()
		if box.Overlaps(playerBox) {
			toRemove = append(toRemove, e)
			if !shielding {
				hits = append(hits, components.Arrow.Get(e).Damage)
			}
			return
		}

		if !box.Inside(width, height) {
			toRemove = append(toRemove, e)
		}
	})

	for _, arrow := range toRemove {
		factory.Destroy(ecs, arrow)
	}

	for _, damage := range hits {
		if damagePlayer(ecs, damage) {
			return
		}
	}
}
