package systems

import (
	"github.com/automoto/goalrush/components"
	"github.com/automoto/goalrush/shared/gamemath"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// damagePlayer subtracts amount from the player's health, clamped at zero.
// It reports whether the hit was fatal.
func damagePlayer(e *ecs.ECS, amount int) bool {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	hp := components.Health.Get(player)
	hp.Current = gamemath.ClampInt(hp.Current-amount, 0, hp.Max)
	if hp.Current > 0 {
		return false
	}
	recordDeath(e)
	return true
}

// healPlayer adds amount to the player's health, capped at max.
func healPlayer(e *ecs.ECS, amount int) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	hp.Current = gamemath.ClampInt(hp.Current+amount, 0, hp.Max)
}
