package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and object names read from the maps.
const (
	GroupName       = "Level"
	RulesObject     = "Rules"
	SpawnObject     = "PlayerSpawn"
	GoalObject      = "Goal"
	PropEnemies     = "enemies"
	PropCoins       = "coins"
	PropCheckpoint  = "checkpoint"
	defaultGoalSize = 20
)

// LoadLevel parses a TMX file into a level table entry. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS (custom level directories).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
	}

	var hasRules, hasSpawn, hasGoal bool
	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupName {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case RulesObject:
				level.Enemies = o.Properties.GetInt(PropEnemies)
				level.Coins = o.Properties.GetInt(PropCoins)
				level.Checkpoint = o.Properties.GetBool(PropCheckpoint)
				hasRules = true
			case SpawnObject:
				level.Spawn = Point{X: o.X, Y: o.Y}
				hasSpawn = true
			case GoalObject:
				w, h := o.Width, o.Height
				if w == 0 || h == 0 {
					w, h = defaultGoalSize, defaultGoalSize
				}
				level.Goal = Rect{X: o.X, Y: o.Y, W: w, H: h}
				hasGoal = true
			}
		}
	}

	switch {
	case !hasRules:
		return nil, fmt.Errorf("%s: missing %q object", tmxPath, RulesObject)
	case !hasSpawn:
		return nil, fmt.Errorf("%s: missing %q object", tmxPath, SpawnObject)
	case !hasGoal:
		return nil, fmt.Errorf("%s: missing %q object", tmxPath, GoalObject)
	}
	if level.Enemies < 0 || level.Coins < 0 {
		return nil, fmt.Errorf("%s: negative entity count", tmxPath)
	}

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them ordered by file name, which is the play order.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, match := range matches {
		level, err := LoadLevel(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels = append(levels, *level)
	}
	return levels, nil
}
