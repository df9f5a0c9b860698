package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint places the checkpoint pickup at the center of the canvas.
func CreateCheckpoint(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	size := cfg.Checkpoint.Size
	x := float64(cfg.C.Width)/2 - size/2
	y := float64(cfg.C.Height)/2 - size/2
	attachObject(checkpoint, x, y, size, size, tags.ResolvCheckpoint)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		LevelIndex: levelIndex,
	})

	return checkpoint
}
