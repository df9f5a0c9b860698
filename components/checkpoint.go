package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	LevelIndex int // level the checkpoint belongs to
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
