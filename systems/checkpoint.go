package systems

import (
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints records the checkpoint for the run when the player
// touches it. The pickup is removed and does not respawn until the run
// loses the flag.
func UpdateCheckpoints(ecs *ecs.ECS) {
	_, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}

	for _, entry := range overlapping(ecs.World, tags.Checkpoint, playerBox) {
		GetRun(ecs).CheckpointCollected = true
		factory.Destroy(ecs, entry)
	}
}
