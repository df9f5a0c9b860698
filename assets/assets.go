package assets

import (
	"embed"

	"github.com/automoto/goalrush/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadLevels reads the embedded level maps in file name order.
func LoadLevels() ([]leveldata.Level, error) {
	return leveldata.LoadAllLevels(assetFS, "levels")
}
