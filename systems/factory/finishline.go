package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaceGoal moves the goal trigger to rect, creating it on first use.
func PlaceGoal(ecs *ecs.ECS, rect leveldata.Rect, levelIndex int) *donburi.Entry {
	goal, ok := tags.Goal.First(ecs.World)
	if !ok {
		goal = archetypes.Goal.Spawn(ecs)
		attachObject(goal, rect.X, rect.Y, rect.W, rect.H, tags.ResolvGoal)
	}

	obj := components.Object.Get(goal)
	obj.X, obj.Y, obj.W, obj.H = rect.X, rect.Y, rect.W, rect.H

	components.Goal.SetValue(goal, components.GoalData{LevelIndex: levelIndex})

	return goal
}
