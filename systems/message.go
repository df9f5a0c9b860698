package systems

import (
	"image/color"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateBanner advances the level banner fade by one tick.
func UpdateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Fade == nil {
		return
	}

	alpha, finished := banner.Fade.Update(1.0 / float32(ebiten.DefaultTPS))
	banner.Alpha = alpha
	if finished {
		banner.Alpha = 0
		banner.Fade = nil
	}
}

// DrawBanner renders the level banner centered on screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 {
		return
	}

	face := fonts.Title.Get()
	clr := cfg.UI.BannerColor
	clr.A = uint8(float32(clr.A) * banner.Alpha)

	x := centerTextX(banner.Text, face, float64(screen.Bounds().Dx()))
	text.Draw(screen, banner.Text, face, x, cfg.UI.BannerY, color.NRGBA(clr))
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
