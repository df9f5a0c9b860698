package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/fonts"
	"github.com/automoto/goalrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and prints the tick counter.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvWeapon, tags.ResolvShield) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvArrow) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})

	run := GetRun(ecs)
	label := fmt.Sprintf("tick %d  %s", run.Tick, run.Status)
	text.Draw(screen, label, fonts.HUD.Get(), cfg.UI.HUDMargin, cfg.C.Height-cfg.UI.HUDMargin, cfg.UI.TextColor)
}
