package config

import (
	"fmt"
	"image/color"

	"github.com/automoto/goalrush/shared/leveldata"
)

// Config holds the canvas dimensions.
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per tick, diagonals are not normalized)
	Speed float64

	// Combat
	Health int

	// Dimensions
	Width  float64
	Height float64

	// Spawn used when a level does not define one
	SpawnX float64
	SpawnY float64

	Color color.RGBA
}

// WeaponConfig describes the melee hitbox held beside the player
type WeaponConfig struct {
	Width  float64
	Height float64
	Damage int // per tick of overlap
	Color  color.RGBA
}

// ShieldConfig describes the block hitbox held beside the player
type ShieldConfig struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Speed          float64 // per axis
	BaseHealth     int
	HealthPerIndex int // added for each enemy spawned before this one
	Width          float64
	Height         float64

	// Combat
	ContactDamage int     // per tick of overlap
	ArrowChance   float64 // per enemy per tick
	KillScore     int
	KillHeal      int

	Color color.RGBA
}

// ArrowConfig describes the projectile enemies fire at the player
type ArrowConfig struct {
	Width    float64
	Height   float64
	Damage   int
	AimSteps float64 // ticks the arrow needs to reach the aim point
	Color    color.RGBA

	// Launch point sits this far above the owner's vertical center
	LaunchOffsetY float64
}

type CoinConfig struct {
	Size  float64
	Score int
	Color color.RGBA
}

type PowerUpConfig struct {
	Size     float64
	Heal     int
	PerLevel int
	Color    color.RGBA
}

type CheckpointConfig struct {
	Size  float64
	Color color.RGBA
}

type GoalConfig struct {
	Color color.RGBA
}

type ExplosionConfig struct {
	Radius float32
	Color  color.RGBA
}

// RunConfig contains timer and lifecycle values
type RunConfig struct {
	TimeLimit float64 // seconds per level
	TimeStep  float64 // subtracted every tick

	// Reaching this many deaths in one run forfeits the checkpoint
	DeathsToLoseCheckpoint int
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	Background color.RGBA
	TextColor  color.RGBA
	HUDMargin  int
	HUDLine    int

	HealthBarHeight float32
	HealthBarOffset float32 // gap above the owner's box
	HealthBarBack   color.RGBA
	HealthBarFront  color.RGBA

	BannerDuration float32 // seconds
	BannerY        int
	BannerColor    color.RGBA
}

// GameOverConfig contains the end-of-run overlay values
type GameOverConfig struct {
	OverlayColor  color.RGBA
	PanelColor    color.RGBA
	TitleColor    color.RGBA
	TextColor     color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	TitleSize     float64
	TextSize      float64
	ButtonWidth   int
	ButtonHeight  int
}

// DebugConfig contains developer toggles
type DebugConfig struct {
	ShowBoxes bool // outline every collision box
}

var C *Config
var Debug DebugConfig
var Player PlayerConfig
var Weapon WeaponConfig
var Shield ShieldConfig
var Enemy EnemyConfig
var Arrow ArrowConfig
var Coin CoinConfig
var PowerUp PowerUpConfig
var Checkpoint CheckpointConfig
var Goal GoalConfig
var Explosion ExplosionConfig
var Run RunConfig
var UI UIConfig
var GameOver GameOverConfig

// Levels is the built-in level table, used when no map files can be loaded.
var Levels []leveldata.Level

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Player = PlayerConfig{
		Speed:  3,
		Health: 100,
		Width:  20,
		Height: 20,
		SpawnX: 50,
		SpawnY: 50,
		Color:  color.RGBA{0, 0, 255, 255},
	}

	Weapon = WeaponConfig{
		Width:  5,
		Height: 20,
		Damage: 5,
		Color:  color.RGBA{128, 128, 128, 255},
	}

	Shield = ShieldConfig{
		Width:  30,
		Height: 20,
		Color:  color.RGBA{0, 200, 255, 255},
	}

	Enemy = EnemyConfig{
		Speed:          1,
		BaseHealth:     50,
		HealthPerIndex: 10,
		Width:          20,
		Height:         20,
		ContactDamage:  1,
		ArrowChance:    0.002,
		KillScore:      20,
		KillHeal:       10,
		Color:          color.RGBA{255, 0, 0, 255},
	}

	Arrow = ArrowConfig{
		Width:         10,
		Height:        5,
		Damage:        10,
		AimSteps:      100,
		Color:         color.RGBA{139, 69, 19, 255},
		LaunchOffsetY: 2,
	}

	Coin = CoinConfig{
		Size:  10,
		Score: 10,
		Color: color.RGBA{255, 215, 0, 255},
	}

	PowerUp = PowerUpConfig{
		Size:     15,
		Heal:     20,
		PerLevel: 1,
		Color:    color.RGBA{0, 255, 0, 255},
	}

	Checkpoint = CheckpointConfig{
		Size:  20,
		Color: color.RGBA{128, 0, 128, 255},
	}

	Goal = GoalConfig{
		Color: color.RGBA{0, 128, 0, 255},
	}

	Explosion = ExplosionConfig{
		Radius: 30,
		Color:  color.RGBA{255, 165, 0, 255},
	}

	Run = RunConfig{
		TimeLimit:              120,
		TimeStep:               0.0167,
		DeathsToLoseCheckpoint: 3,
	}

	UI = UIConfig{
		Background:      color.RGBA{235, 235, 235, 255},
		TextColor:       color.RGBA{0, 0, 0, 255},
		HUDMargin:       10,
		HUDLine:         20,
		HealthBarHeight: 5,
		HealthBarOffset: 10,
		HealthBarBack:   color.RGBA{255, 0, 0, 255},
		HealthBarFront:  color.RGBA{0, 255, 0, 255},
		BannerDuration:  1.5,
		BannerY:         280,
		BannerColor:     color.RGBA{0, 0, 0, 255},
	}

	GameOver = GameOverConfig{
		OverlayColor:  color.RGBA{0, 0, 0, 160},
		PanelColor:    color.RGBA{30, 30, 40, 240},
		TitleColor:    color.RGBA{255, 80, 80, 255},
		TextColor:     color.RGBA{230, 230, 230, 255},
		ButtonIdle:    color.RGBA{60, 60, 80, 255},
		ButtonHover:   color.RGBA{80, 80, 110, 255},
		ButtonPressed: color.RGBA{40, 40, 60, 255},
		TitleSize:     32,
		TextSize:      16,
		ButtonWidth:   140,
		ButtonHeight:  30,
	}

	// enemies, coins
	table := [][2]int{
		{2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7},
		{7, 8}, {8, 9}, {9, 10}, {10, 11}, {12, 12},
	}
	const checkpointLevel = 4
	Levels = make([]leveldata.Level, len(table))
	for i, row := range table {
		Levels[i] = leveldata.Level{
			Name:       fmt.Sprintf("level_%02d", i+1),
			Enemies:    row[0],
			Coins:      row[1],
			Checkpoint: i == checkpointLevel,
			Spawn:      leveldata.Point{X: Player.SpawnX, Y: Player.SpawnY},
			Goal:       leveldata.Rect{X: 750, Y: 550, W: 20, H: 20},
		}
	}
}
