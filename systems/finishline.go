package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoal advances to the next level when the player reaches the goal, or
// wins the run on the last level.
func UpdateGoal(ecs *ecs.ECS) {
	_, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}
	_, goalBox, ok := boxOf(ecs.World, tags.Goal)
	if !ok || !playerBox.Overlaps(goalBox) {
		return
	}

	run := GetRun(ecs)
	table := components.Level.Get(components.Level.MustFirst(ecs.World))
	if run.LevelIndex+1 >= len(table.Levels) {
		run.Status = cfg.RunWon
		return
	}

	run.LevelIndex++
	factory.InitializeLevel(ecs)
}
