package scenes

import (
	"log"
	"sync"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/core"
	"github.com/automoto/goalrush/systems"
	"github.com/automoto/goalrush/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene drives a run from the keyboard and gamepads and draws it.
type PlayScene struct {
	game    *core.Game
	opts    core.Options
	overlay *ui.GameOverUI
	report  components.Report
	once    sync.Once
}

func NewPlayScene(opts core.Options) *PlayScene {
	return &PlayScene{opts: opts}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)

	ps.report = ps.game.Tick(systems.PollInput())

	if ps.report.Status.Terminal() {
		ps.overlay.SetReport(ps.report)
		ps.overlay.Update()
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.Background)

	if ps.game == nil {
		return
	}
	ps.game.ECS().Draw(screen)

	if ps.report.Status.Terminal() {
		ps.overlay.Draw(screen)
	}
}

func (ps *PlayScene) configure() {
	ps.game = core.NewGame(ps.opts)

	e := ps.game.ECS()
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHealthBars)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawBanner)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	overlay, err := ui.NewGameOverUI(
		ps.game.Restart,
		func() { ps.game.Continue() },
	)
	if err != nil {
		log.Fatalf("failed to build game over UI: %v", err)
	}
	ps.overlay = overlay
	ps.report = ps.game.Report()
}
