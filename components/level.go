package components

import (
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels []leveldata.Level
}

// At returns the level at index, clamped to the table.
func (l *LevelData) At(index int) leveldata.Level {
	if index < 0 {
		index = 0
	}
	if index >= len(l.Levels) {
		index = len(l.Levels) - 1
	}
	return l.Levels[index]
}

// CheckpointIndex returns the first level that carries the checkpoint, or 0.
func (l *LevelData) CheckpointIndex() int {
	for i, level := range l.Levels {
		if level.Checkpoint {
			return i
		}
	}
	return 0
}

var Level = donburi.NewComponentType[LevelData]()
