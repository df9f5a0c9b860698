package systems

import (
	cfg "github.com/automoto/goalrush/config"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceTick counts simulated ticks for the current run.
func AdvanceTick(ecs *ecs.ECS) {
	GetRun(ecs).Tick++
}

// UpdateTimer runs the level clock down and ends the run when it expires.
func UpdateTimer(ecs *ecs.ECS) {
	run := GetRun(ecs)
	run.TimeLeft -= cfg.Run.TimeStep
	if run.TimeLeft <= 0 {
		run.TimeLeft = 0
		run.Status = cfg.RunTimedOut
	}
}
