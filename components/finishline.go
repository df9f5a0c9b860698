package components

import "github.com/yohamta/donburi"

// GoalData marks the level exit. One goal exists per run and is moved on
// every level initialization.
type GoalData struct {
	LevelIndex int
}

var Goal = donburi.NewComponentType[GoalData]()
