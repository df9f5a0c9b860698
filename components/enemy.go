package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Index int // spawn order within the level
}

var Enemy = donburi.NewComponentType[EnemyData]()
