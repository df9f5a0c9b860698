package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the index-th enemy of a level. Later enemies are tougher.
func CreateEnemy(ecs *ecs.ECS, index int, x, y, speedX, speedY float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	attachObject(enemy, x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)

	health := cfg.Enemy.BaseHealth + cfg.Enemy.HealthPerIndex*index
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX: speedX,
		SpeedY: speedY,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{Index: index})

	return enemy
}
