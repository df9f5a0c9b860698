package components

import "github.com/yohamta/donburi"

// CoinData marks a coin. Collected coins stay in the world but are inert.
type CoinData struct {
	Collected bool
}

var Coin = donburi.NewComponentType[CoinData]()

type PowerUpData struct {
	Heal int
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
