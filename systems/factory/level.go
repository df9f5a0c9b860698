package factory

import (
	"fmt"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// perLevel lists the tags of every entity that lives for a single level.
var perLevel = []*donburi.ComponentType[donburi.Tag]{
	tags.Enemy,
	tags.Coin,
	tags.Arrow,
	tags.Explosion,
	tags.PowerUp,
	tags.Checkpoint,
}

// InitializeLevel builds the level at the run's current index: the player is
// reset, per-level entities are replaced, the goal is moved and the timer
// restarts.
func InitializeLevel(e *ecs.ECS) {
	run := components.Run.Get(components.Run.MustFirst(e.World))
	table := components.Level.Get(components.Level.MustFirst(e.World))
	rng := components.RNG.Get(components.RNG.MustFirst(e.World)).Rand
	level := table.At(run.LevelIndex)

	ClearLevel(e)
	ResetPlayer(e, level.Spawn)

	for i := 0; i < level.Coins; i++ {
		x, y := randomPosition(rng, cfg.Coin.Size, cfg.Coin.Size)
		CreateCoin(e, x, y)
	}

	for i := 0; i < level.Enemies; i++ {
		x, y := randomPosition(rng, cfg.Enemy.Width, cfg.Enemy.Height)
		speedX := randomSign(rng) * cfg.Enemy.Speed
		speedY := randomSign(rng) * cfg.Enemy.Speed
		CreateEnemy(e, i, x, y, speedX, speedY)
	}

	for i := 0; i < cfg.PowerUp.PerLevel; i++ {
		x, y := randomPosition(rng, cfg.PowerUp.Size, cfg.PowerUp.Size)
		CreatePowerUp(e, x, y)
	}

	if level.Checkpoint && !run.CheckpointCollected {
		CreateCheckpoint(e, run.LevelIndex)
	}

	PlaceGoal(e, level.Goal, run.LevelIndex)
	run.TimeLeft = cfg.Run.TimeLimit

	ShowBanner(e, fmt.Sprintf("Level %d", run.LevelIndex+1))
}

// ClearLevel removes every per-level entity.
func ClearLevel(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	for _, tag := range perLevel {
		tag.Each(e.World, func(entry *donburi.Entry) {
			toRemove = append(toRemove, entry)
		})
	}
	for _, entry := range toRemove {
		Destroy(e, entry)
	}
}
