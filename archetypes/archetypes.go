package archetypes

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.Object,
	)
	Shield = newArchetype(
		tags.Shield,
		components.Shield,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Object,
		components.Physics,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Run = newArchetype(
		components.Run,
	)
	Level = newArchetype(
		components.Level,
	)
	RNG = newArchetype(
		components.RNG,
	)
	Input = newArchetype(
		components.Input,
	)
	Banner = newArchetype(
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
