// Command simulate plays a run without a window, feeding random input to the
// simulation and logging how it ends.
package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/automoto/goalrush/assets"
	"github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/core"
)

// heldActions are the actions the random driver may hold.
var heldActions = []config.ActionID{
	config.ActionMoveUp,
	config.ActionMoveDown,
	config.ActionMoveLeft,
	config.ActionMoveRight,
	config.ActionAttack,
	config.ActionShield,
}

func main() {
	seed := flag.Int64("seed", 1, "simulation seed")
	ticks := flag.Int("ticks", 20000, "maximum ticks to simulate")
	hold := flag.Int("hold", 30, "ticks to keep each random input")
	continues := flag.Int("continues", 0, "continues to spend after a loss")
	flag.Parse()

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Printf("Warning: Could not load embedded levels, using built-in table: %v", err)
		levels = config.Levels
	}

	game := core.NewGame(core.Options{Seed: *seed, Levels: levels})
	driver := rand.New(rand.NewSource(*seed))

	var input [config.ActionCount]bool
	report := game.Report()
	level := report.LevelIndex
	for i := 0; i < *ticks; i++ {
		if i%*hold == 0 {
			input = [config.ActionCount]bool{}
			for _, action := range heldActions {
				input[action] = driver.Intn(2) == 0
			}
		}

		report = game.Tick(input)
		if report.LevelIndex != level {
			level = report.LevelIndex
			log.Printf("tick %d: reached %s", report.Tick, report.LevelName)
		}

		if !report.Status.Terminal() {
			continue
		}
		if *continues > 0 && game.Continue() {
			*continues--
			log.Printf("tick %d: %s, continuing (deaths %d)", report.Tick, report.Status, report.Deaths)
			continue
		}
		break
	}

	log.Printf("status=%s tick=%d score=%d level=%s time=%.2f health=%d deaths=%d checkpoint=%t",
		report.Status, report.Tick, report.Score, report.LevelName, report.TimeLeft,
		report.Health, report.Deaths, report.CheckpointCollected)
}
