package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins collects every uncollected coin the player touches.
func UpdateCoins(ecs *ecs.ECS) {
	_, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}
	run := GetRun(ecs)

	for _, entry := range overlapping(ecs.World, tags.Coin, playerBox) {
		coin := components.Coin.Get(entry)
		if coin.Collected {
			continue
		}
		coin.Collected = true
		run.Score += cfg.Coin.Score
	}
}

// UpdatePowerUps heals the player for every power-up touched and removes it.
func UpdatePowerUps(ecs *ecs.ECS) {
	_, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}

	for _, entry := range overlapping(ecs.World, tags.PowerUp, playerBox) {
		healPlayer(ecs, components.PowerUp.Get(entry).Heal)
		factory.Destroy(ecs, entry)
	}
}
