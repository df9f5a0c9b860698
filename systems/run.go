package systems

import (
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetRun returns the run singleton, creating it if needed.
func GetRun(e *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(e.World)
	if !ok {
		entry = factory.CreateRun(e)
	}
	return components.Run.Get(entry)
}

// IsRunning reports whether the run is still being played.
func IsRunning(e *ecs.ECS) bool {
	return GetRun(e).Status == cfg.RunPlaying
}

// WithRunningCheck wraps a system to skip execution once the run has ended.
// A system that ends the run therefore halts the rest of the tick.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// UpdateRunControls handles the restart and continue actions. It runs every
// tick, including after the run has ended.
func UpdateRunControls(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).JustPressed {
		RestartRun(e)
		return
	}
	if GetAction(input, cfg.ActionContinue).JustPressed && GetRun(e).Status.CanContinue() {
		ContinueRun(e)
	}
}

// RestartRun discards all progress and starts again from the first level.
func RestartRun(e *ecs.ECS) {
	run := GetRun(e)
	*run = components.RunData{
		Status:   cfg.RunPlaying,
		TimeLeft: cfg.Run.TimeLimit,
	}
	factory.InitializeLevel(e)
}

// ContinueRun resumes a lost run. Score is reset while deaths and the
// checkpoint are kept; play resumes on the checkpoint level when the
// checkpoint is held, otherwise on the first level. It reports whether the
// run could be continued.
func ContinueRun(e *ecs.ECS) bool {
	run := GetRun(e)
	if !run.Status.CanContinue() {
		return false
	}

	run.Status = cfg.RunPlaying
	run.Score = 0
	run.LevelIndex = 0
	if run.CheckpointCollected {
		table := components.Level.Get(components.Level.MustFirst(e.World))
		run.LevelIndex = table.CheckpointIndex()
	}
	factory.InitializeLevel(e)
	return true
}

// BuildReport snapshots the run for the driver.
func BuildReport(e *ecs.ECS) components.Report {
	run := GetRun(e)
	report := components.Report{
		Status:              run.Status,
		Tick:                run.Tick,
		Score:               run.Score,
		TimeLeft:            run.TimeLeft,
		LevelIndex:          run.LevelIndex,
		Deaths:              run.Deaths,
		CheckpointCollected: run.CheckpointCollected,
	}

	if table, ok := components.Level.First(e.World); ok {
		report.LevelName = components.Level.Get(table).At(run.LevelIndex).Name
	}
	if player, ok := tags.Player.First(e.World); ok {
		report.Health = components.Health.Get(player).Current
	}

	tags.Enemy.Each(e.World, func(*donburi.Entry) { report.Enemies++ })
	tags.Arrow.Each(e.World, func(*donburi.Entry) { report.Arrows++ })
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		if !components.Coin.Get(entry).Collected {
			report.CoinsLeft++
		}
	})

	return report
}
