package components

import "github.com/yohamta/donburi"

type ArrowData struct {
	Damage int
}

var Arrow = donburi.NewComponentType[ArrowData]()
