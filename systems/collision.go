package systems

import (
	"github.com/automoto/goalrush/components"
	"github.com/automoto/goalrush/shared/gamemath"
	"github.com/yohamta/donburi"
)

// overlapping returns the entries carrying tag whose boxes overlap box, in
// world iteration order.
func overlapping(world donburi.World, tag *donburi.ComponentType[donburi.Tag], box gamemath.Rect) []*donburi.Entry {
	var hits []*donburi.Entry
	tag.Each(world, func(e *donburi.Entry) {
		if components.Object.Get(e).Rect().Overlaps(box) {
			hits = append(hits, e)
		}
	})
	return hits
}

// boxOf returns the bounds of the first entry carrying tag.
func boxOf(world donburi.World, tag *donburi.ComponentType[donburi.Tag]) (*donburi.Entry, gamemath.Rect, bool) {
	entry, ok := tag.First(world)
	if !ok {
		return nil, gamemath.Rect{}, false
	}
	return entry, components.Object.Get(entry).Rect(), true
}
