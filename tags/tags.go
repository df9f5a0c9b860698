package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Weapon     = donburi.NewTag().SetName("Weapon")
	Shield     = donburi.NewTag().SetName("Shield")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Coin       = donburi.NewTag().SetName("Coin")
	Arrow      = donburi.NewTag().SetName("Arrow")
	Explosion  = donburi.NewTag().SetName("Explosion")
	PowerUp    = donburi.NewTag().SetName("PowerUp")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Goal       = donburi.NewTag().SetName("Goal")
)

// Resolv tags attached to collision objects
const (
	ResolvPlayer     = "Player"
	ResolvWeapon     = "Weapon"
	ResolvShield     = "Shield"
	ResolvEnemy      = "Enemy"
	ResolvCoin       = "coin"
	ResolvArrow      = "Arrow"
	ResolvPowerUp    = "powerup"
	ResolvCheckpoint = "checkpoint"
	ResolvGoal       = "goal"
)
