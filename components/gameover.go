package components

import (
	cfg "github.com/automoto/goalrush/config"
	"github.com/yohamta/donburi"
)

// RunData is the singleton holding everything that outlives a single level.
type RunData struct {
	Status              cfg.RunStatusID
	Score               int
	TimeLeft            float64
	LevelIndex          int
	Deaths              int
	CheckpointCollected bool
	Tick                int // ticks simulated since the run started
}

var Run = donburi.NewComponentType[RunData]()

// Report is the per-tick snapshot handed back to the driver.
type Report struct {
	Status              cfg.RunStatusID
	Tick                int
	Score               int
	TimeLeft            float64
	Health              int
	LevelIndex          int
	LevelName           string
	Deaths              int
	CheckpointCollected bool
	Enemies             int
	CoinsLeft           int
	Arrows              int
}
