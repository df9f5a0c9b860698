package components

import "github.com/yohamta/donburi"

// ExplosionData is a one-frame marker drawn where an enemy died.
type ExplosionData struct {
	X, Y      float64
	Radius    float32
	SpawnTick int
}

var Explosion = donburi.NewComponentType[ExplosionData]()
