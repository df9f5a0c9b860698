package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	attachObject(coin, x, y, cfg.Coin.Size, cfg.Coin.Size, tags.ResolvCoin)
	return coin
}

func CreatePowerUp(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(ecs)
	attachObject(powerUp, x, y, cfg.PowerUp.Size, cfg.PowerUp.Size, tags.ResolvPowerUp)
	components.PowerUp.SetValue(powerUp, components.PowerUpData{Heal: cfg.PowerUp.Heal})
	return powerUp
}
