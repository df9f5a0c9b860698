// Package core runs the simulation without a window. It owns the ECS world
// and advances it one tick at a time from explicit input flags, so the same
// rules drive the game, the headless simulator and the tests.
package core

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/automoto/goalrush/systems"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a new game.
type Options struct {
	Seed   int64
	Levels []leveldata.Level // nil selects the built-in table
}

// DefaultOptions returns options for the built-in level table.
func DefaultOptions() Options {
	return Options{Seed: 1, Levels: cfg.Levels}
}

// Game is a single run of the simulation.
type Game struct {
	ecs *ecs.ECS
}

// NewGame builds the world and initializes the first level.
func NewGame(opts Options) *Game {
	levels := opts.Levels
	if len(levels) == 0 {
		levels = cfg.Levels
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Run controls see every tick, even after the run has ended
	e.AddSystem(systems.UpdateRunControls)

	// One simulation step, in order; an ended run skips the rest of the tick
	e.AddSystem(systems.WithRunningCheck(systems.AdvanceTick))
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePlayerMovement))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateShield))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateWeapon))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCoins))
	e.AddSystem(systems.WithRunningCheck(systems.UpdatePowerUps))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateCheckpoints))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateExplosions))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateArrows))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateGoal))
	e.AddSystem(systems.WithRunningCheck(systems.UpdateTimer))

	// Cosmetic
	e.AddSystem(systems.UpdateBanner)

	factory.CreateRun(e)
	factory.CreateLevelTable(e, levels)
	factory.CreateRNG(e, opts.Seed)
	factory.CreateInput(e)
	factory.CreatePlayer(e, levels[0].Spawn)
	factory.InitializeLevel(e)

	return &Game{ecs: e}
}

// Tick advances the simulation by one step with the given held actions and
// returns the resulting state. Once the run has ended only the restart and
// continue actions have any effect.
func (g *Game) Tick(actions [cfg.ActionCount]bool) components.Report {
	systems.SetInput(g.ecs, actions)
	g.ecs.Update()
	return g.Report()
}

// Restart discards all progress and starts again from the first level.
func (g *Game) Restart() {
	systems.RestartRun(g.ecs)
}

// Continue resumes a lost run. It reports false if the run has not ended in
// a loss.
func (g *Game) Continue() bool {
	return systems.ContinueRun(g.ecs)
}

// Report snapshots the current state without advancing.
func (g *Game) Report() components.Report {
	return systems.BuildReport(g.ecs)
}

// ECS exposes the world so renderers can be attached.
func (g *Game) ECS() *ecs.ECS {
	return g.ecs
}
