package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RNGData is the singleton random source used for placement and arrow rolls.
type RNGData struct {
	*rand.Rand
}

var RNG = donburi.NewComponentType[RNGData]()
