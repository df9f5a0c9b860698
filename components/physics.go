package components

import "github.com/yohamta/donburi"

// PhysicsData is a constant per-tick velocity.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
