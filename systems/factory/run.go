package factory

import (
	"math/rand"

	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the run singleton in its starting state.
func CreateRun(ecs *ecs.ECS) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{
		Status:   cfg.RunPlaying,
		TimeLeft: cfg.Run.TimeLimit,
	})
	return run
}

// CreateLevelTable stores the ordered level table.
func CreateLevelTable(ecs *ecs.ECS, levels []leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Levels: levels})
	return level
}

// CreateRNG stores the random source seeded with seed.
func CreateRNG(ecs *ecs.ECS, seed int64) *donburi.Entry {
	entry := archetypes.RNG.Spawn(ecs)
	components.RNG.SetValue(entry, components.RNGData{Rand: rand.New(rand.NewSource(seed))})
	return entry
}

// CreateInput spawns the input singleton with nothing held.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
