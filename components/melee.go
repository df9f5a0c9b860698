package components

import "github.com/yohamta/donburi"

// Facing is the side of the player the weapon is held on.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type WeaponData struct {
	Facing Facing
	Active bool
}

var Weapon = donburi.NewComponentType[WeaponData]()

type ShieldData struct {
	Active bool
}

var Shield = donburi.NewComponentType[ShieldData]()
