// Package leveldata provides the level table parsed from Tiled maps.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// Level is one entry of the level table.
type Level struct {
	Name       string
	Enemies    int
	Coins      int
	Checkpoint bool // the checkpoint pickup spawns on this level
	Spawn      Point
	Goal       Rect
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Rect is a trigger region in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}
