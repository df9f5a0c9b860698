package systems

import (
	"github.com/automoto/goalrush/components"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExplosions drops explosions spawned on an earlier tick, so each one
// is drawn for exactly one frame.
func UpdateExplosions(ecs *ecs.ECS) {
	run := GetRun(ecs)

	var toRemove []*donburi.Entry
	tags.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		if components.Explosion.Get(e).SpawnTick < run.Tick {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}
