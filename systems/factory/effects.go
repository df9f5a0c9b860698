package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion marks an enemy death at (x, y). It is removed on the tick
// after spawnTick.
func CreateExplosion(ecs *ecs.ECS, x, y float64, spawnTick int) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)
	components.Explosion.SetValue(explosion, components.ExplosionData{
		X:         x,
		Y:         y,
		Radius:    cfg.Explosion.Radius,
		SpawnTick: spawnTick,
	})
	return explosion
}
