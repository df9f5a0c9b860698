package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/gamemath"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy, rolls for arrow shots and resolves contact
// with the player and the weapon. Processing stops at the player's death.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, playerBox, ok := boxOf(ecs.World, tags.Player)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	var weaponBox gamemath.Rect
	weaponActive := false
	if weaponEntry, ok := tags.Weapon.First(ecs.World); ok {
		weaponActive = components.Weapon.Get(weaponEntry).Active
		weaponBox = components.Object.Get(weaponEntry).Rect()
	}

	run := GetRun(ecs)
	rng := components.RNG.Get(components.RNG.MustFirst(ecs.World))
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	var enemies []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	var toRemove []*donburi.Entry
	for _, enemy := range enemies {
		obj := components.Object.Get(enemy)
		physics := components.Physics.Get(enemy)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		physics.SpeedX = gamemath.Bounce(obj.X, obj.W, width, physics.SpeedX)
		physics.SpeedY = gamemath.Bounce(obj.Y, obj.H, height, physics.SpeedY)

		if rng.Float64() < cfg.Enemy.ArrowChance {
			factory.CreateArrow(ecs, enemy, playerObj.X, playerObj.Y)
		}

		box := obj.Rect()
		if box.Overlaps(playerBox) && damagePlayer(ecs, cfg.Enemy.ContactDamage) {
			break
		}

		if !weaponActive || !box.Overlaps(weaponBox) {
			continue
		}
		hp := components.Health.Get(enemy)
		hp.Current -= cfg.Weapon.Damage
		if hp.Current > 0 {
			continue
		}

		cx, cy := box.Center()
		factory.CreateExplosion(ecs, cx, cy, run.Tick)
		healPlayer(ecs, cfg.Enemy.KillHeal)
		run.Score += cfg.Enemy.KillScore
		toRemove = append(toRemove, enemy)
	}

	for _, enemy := range toRemove {
		factory.Destroy(ecs, enemy)
	}
}
