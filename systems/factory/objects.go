package factory

import (
	"math/rand"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attachObject gives entry a collision box and links the box back to it.
func attachObject(entry *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// Destroy removes an entity from the world.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	ecs.World.Remove(entry.Entity())
}

// randomPosition picks a top-left corner that keeps a w x h box on the canvas.
func randomPosition(rng *rand.Rand, w, h float64) (float64, float64) {
	return rng.Float64() * (float64(cfg.C.Width) - w),
		rng.Float64() * (float64(cfg.C.Height) - h)
}

// randomSign returns -1 or 1 with equal probability.
func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
