package factory

import (
	"github.com/automoto/goalrush/archetypes"
	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner displays text on the banner and restarts its fade-out.
func ShowBanner(ecs *ecs.ECS, text string) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = archetypes.Banner.Spawn(ecs)
	}

	components.Banner.SetValue(entry, components.BannerData{
		Text:  text,
		Alpha: 1,
		Fade:  gween.New(1, 0, cfg.UI.BannerDuration, ease.InQuad),
	})
}
