package systems

import (
	"image/color"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld renders every entity as a flat shape, back to front: goal,
// pickups, enemies, arrows, player, melee gear, explosions.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	world := ecs.World

	tags.Goal.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.Goal.Color)
	})
	tags.Checkpoint.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.Checkpoint.Color)
	})
	tags.Coin.Each(world, func(e *donburi.Entry) {
		if !components.Coin.Get(e).Collected {
			drawBox(screen, e, cfg.Coin.Color)
		}
	})
	tags.PowerUp.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.PowerUp.Color)
	})
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.Enemy.Color)
	})
	tags.Arrow.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.Arrow.Color)
	})
	tags.Player.Each(world, func(e *donburi.Entry) {
		drawBox(screen, e, cfg.Player.Color)
	})
	tags.Weapon.Each(world, func(e *donburi.Entry) {
		if components.Weapon.Get(e).Active {
			drawBox(screen, e, cfg.Weapon.Color)
		}
	})
	tags.Shield.Each(world, func(e *donburi.Entry) {
		if components.Shield.Get(e).Active {
			drawBox(screen, e, cfg.Shield.Color)
		}
	})
	tags.Explosion.Each(world, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		vector.DrawFilledCircle(screen, float32(ex.X), float32(ex.Y), ex.Radius, cfg.Explosion.Color, true)
	})
}

// DrawHealthBars renders a bar above the player and every enemy, scaled to
// the owner's max health.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.Max <= 0 {
			return
		}
		o := components.Object.Get(e)

		x := float32(o.X)
		y := float32(o.Y) - cfg.UI.HealthBarOffset
		w := float32(o.W)
		ratio := float32(hp.Current) / float32(hp.Max)
		if ratio < 0 {
			ratio = 0
		}

		vector.FillRect(screen, x, y, w, cfg.UI.HealthBarHeight, cfg.UI.HealthBarBack, false)
		vector.FillRect(screen, x, y, w*ratio, cfg.UI.HealthBarHeight, cfg.UI.HealthBarFront, false)
	})
}

func drawBox(screen *ebiten.Image, e *donburi.Entry, clr color.Color) {
	o := components.Object.Get(e)
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
}
