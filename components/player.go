package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Attacking bool // attack held this tick
	Shielding bool // shield held this tick
}

var Player = donburi.NewComponentType[PlayerData]()
