package systems

import (
	cfg "github.com/automoto/goalrush/config"
	"github.com/yohamta/donburi/ecs"
)

// recordDeath ends the run as a loss. Enough deaths in one run forfeit the
// checkpoint.
func recordDeath(e *ecs.ECS) {
	run := GetRun(e)
	if run.Status != cfg.RunPlaying {
		return
	}
	run.Deaths++
	if run.Deaths >= cfg.Run.DeathsToLoseCheckpoint {
		run.CheckpointCollected = false
	}
	run.Status = cfg.RunDead
}
