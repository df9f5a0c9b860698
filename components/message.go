package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a singleton holding the fading level title.
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween // nil once finished
}

var Banner = donburi.NewComponentType[BannerData]()
