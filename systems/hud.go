package systems

import (
	"fmt"
	"math"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, time, level and deaths in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	report := BuildReport(ecs)
	face := fonts.HUD.Get()

	levels := 0
	if entry, ok := components.Level.First(ecs.World); ok {
		levels = len(components.Level.Get(entry).Levels)
	}

	lines := []string{
		fmt.Sprintf("Score: %d", report.Score),
		fmt.Sprintf("Time: %d", int(math.Ceil(report.TimeLeft))),
		fmt.Sprintf("Level: %d/%d", report.LevelIndex+1, levels),
		fmt.Sprintf("Deaths: %d", report.Deaths),
	}
	if report.CheckpointCollected {
		lines = append(lines, "Checkpoint reached")
	}

	y := cfg.UI.HUDMargin + cfg.UI.HUDLine
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.UI.HUDMargin, y, cfg.UI.TextColor)
		y += cfg.UI.HUDLine
	}
}
