package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/gamemath"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement moves the player from the held direction flags and
// keeps it on the canvas. It also latches the attack and shield flags.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)

	physics := components.Physics.Get(player)
	physics.SpeedX = gamemath.DirectionFromInput(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]) * cfg.Player.Speed
	physics.SpeedY = gamemath.DirectionFromInput(input.Current[cfg.ActionMoveUp], input.Current[cfg.ActionMoveDown]) * cfg.Player.Speed

	obj := components.Object.Get(player)
	obj.X, obj.Y = gamemath.ClampToBounds(
		obj.X+physics.SpeedX, obj.Y+physics.SpeedY,
		obj.W, obj.H,
		float64(cfg.C.Width), float64(cfg.C.Height),
	)

	playerData := components.Player.Get(player)
	playerData.Attacking = input.Current[cfg.ActionAttack]
	playerData.Shielding = input.Current[cfg.ActionShield]
}

// UpdateShield raises the shield while it is held and places it on the side
// of the player opposite the weapon.
func UpdateShield(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	shieldEntry, ok := tags.Shield.First(ecs.World)
	if !ok {
		return
	}

	facing := components.FacingRight
	if weaponEntry, ok := tags.Weapon.First(ecs.World); ok {
		facing = components.Weapon.Get(weaponEntry).Facing
	}

	playerObj := components.Object.Get(player)
	obj := components.Object.Get(shieldEntry)
	if facing == components.FacingRight {
		obj.X = playerObj.X - obj.W
	} else {
		obj.X = playerObj.X + playerObj.W
	}
	obj.Y = playerObj.Y + playerObj.H/2 - obj.H/2

	components.Shield.Get(shieldEntry).Active = components.Player.Get(player).Shielding
}

// UpdateWeapon turns the weapon toward the last horizontal direction held and
// shows it while attack is held.
func UpdateWeapon(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	weaponEntry, ok := tags.Weapon.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	weapon := components.Weapon.Get(weaponEntry)

	switch {
	case input.Current[cfg.ActionMoveRight]:
		weapon.Facing = components.FacingRight
	case input.Current[cfg.ActionMoveLeft]:
		weapon.Facing = components.FacingLeft
	}

	playerObj := components.Object.Get(player)
	obj := components.Object.Get(weaponEntry)
	if weapon.Facing == components.FacingRight {
		obj.X = playerObj.X + playerObj.W
	} else {
		obj.X = playerObj.X - obj.W
	}
	obj.Y = playerObj.Y + playerObj.H/2 - obj.H/2

	weapon.Active = components.Player.Get(player).Attacking
}
