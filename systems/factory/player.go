package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player together with its weapon and shield.
// All three live for the whole run.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	attachObject(player, spawn.X, spawn.Y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	weapon := archetypes.Weapon.Spawn(ecs)
	attachObject(weapon, spawn.X+cfg.Player.Width, spawn.Y, cfg.Weapon.Width, cfg.Weapon.Height, tags.ResolvWeapon)
	components.Weapon.SetValue(weapon, components.WeaponData{Facing: components.FacingRight})

	shield := archetypes.Shield.Spawn(ecs)
	attachObject(shield, spawn.X-cfg.Shield.Width, spawn.Y, cfg.Shield.Width, cfg.Shield.Height, tags.ResolvShield)

	return player
}

// ResetPlayer moves the player to spawn with full health and drops any held
// attack or shield.
func ResetPlayer(ecs *ecs.ECS, spawn leveldata.Point) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		CreatePlayer(ecs, spawn)
		return
	}

	obj := components.Object.Get(player)
	obj.X = spawn.X
	obj.Y = spawn.Y

	hp := components.Health.Get(player)
	hp.Current = hp.Max

	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{})

	if weapon, ok := tags.Weapon.First(ecs.World); ok {
		components.Weapon.SetValue(weapon, components.WeaponData{Facing: components.FacingRight})
	}
	if shield, ok := tags.Shield.First(ecs.World); ok {
		components.Shield.SetValue(shield, components.ShieldData{})
	}
}
