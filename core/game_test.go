package core

import (
	"testing"

	"github.com/automoto/goalrush/components"
	cfg "github.com/automoto/goalrush/config"
	"github.com/automoto/goalrush/shared/leveldata"
	"github.com/automoto/goalrush/systems"
	"github.com/automoto/goalrush/systems/factory"
	"github.com/automoto/goalrush/tags"
	"github.com/yohamta/donburi"
)

func testLevel(enemies, coins int, checkpoint bool) leveldata.Level {
	return leveldata.Level{
		Name:       "test",
		Enemies:    enemies,
		Coins:      coins,
		Checkpoint: checkpoint,
		Spawn:      leveldata.Point{X: 50, Y: 50},
		Goal:       leveldata.Rect{X: 750, Y: 550, W: 20, H: 20},
	}
}

// newEmptyGame returns a game whose current level holds only the player and
// the goal, with arrow volleys disabled.
func newEmptyGame(t *testing.T, levels ...leveldata.Level) *Game {
	t.Helper()
	chance := cfg.Enemy.ArrowChance
	cfg.Enemy.ArrowChance = 0
	t.Cleanup(func() { cfg.Enemy.ArrowChance = chance })

	if len(levels) == 0 {
		levels = []leveldata.Level{testLevel(0, 0, false)}
	}
	g := NewGame(Options{Seed: 7, Levels: levels})
	factory.ClearLevel(g.ecs)
	return g
}

func hold(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var in [cfg.ActionCount]bool
	for _, a := range actions {
		in[a] = true
	}
	return in
}

func player(t *testing.T, g *Game) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(g.ecs.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return entry
}

func playerObject(t *testing.T, g *Game) *components.ObjectData {
	t.Helper()
	return components.Object.Get(player(t, g))
}

func setHealth(t *testing.T, g *Game, hp int) {
	t.Helper()
	components.Health.Get(player(t, g)).Current = hp
}

func movePlayer(t *testing.T, g *Game, x, y float64) {
	t.Helper()
	obj := playerObject(t, g)
	obj.X, obj.Y = x, y
}

func count(g *Game, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(g.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// killPlayer drops the player's health to one and parks a still enemy on it.
func killPlayer(t *testing.T, g *Game) components.Report {
	t.Helper()
	factory.ClearLevel(g.ecs)
	setHealth(t, g, 1)
	obj := playerObject(t, g)
	factory.CreateEnemy(g.ecs, 0, obj.X, obj.Y, 0, 0)
	return g.Tick(hold())
}

func TestFirstLevelMatchesTable(t *testing.T) {
	g := NewGame(DefaultOptions())
	r := g.Report()

	if r.Enemies != 2 || r.CoinsLeft != 3 {
		t.Fatalf("level 0 has %d enemies and %d coins, want 2 and 3", r.Enemies, r.CoinsLeft)
	}
	if n := count(g, tags.PowerUp); n != 1 {
		t.Fatalf("got %d power-ups, want 1", n)
	}
	if n := count(g, tags.Checkpoint); n != 0 {
		t.Fatalf("got %d checkpoints on level 0, want 0", n)
	}
	if r.Status != cfg.RunPlaying || r.TimeLeft != cfg.Run.TimeLimit || r.Health != cfg.Player.Health {
		t.Fatalf("unexpected initial report %+v", r)
	}
}

func TestEnemyHealthGrowsWithIndex(t *testing.T) {
	g := NewGame(Options{Seed: 3, Levels: []leveldata.Level{testLevel(3, 0, false)}})

	seen := map[int]int{}
	components.Enemy.Each(g.ecs.World, func(e *donburi.Entry) {
		seen[components.Enemy.Get(e).Index] = components.Health.Get(e).Max
	})
	for i, want := range []int{50, 60, 70} {
		if seen[i] != want {
			t.Fatalf("enemy %d max health = %d, want %d", i, seen[i], want)
		}
	}
}

func TestPlayerStaysOnCanvas(t *testing.T) {
	g := newEmptyGame(t)

	for i := 0; i < 40; i++ {
		g.Tick(hold(cfg.ActionMoveUp, cfg.ActionMoveLeft))
	}
	if obj := playerObject(t, g); obj.X != 0 || obj.Y != 0 {
		t.Fatalf("player at (%v, %v), want (0, 0)", obj.X, obj.Y)
	}

	movePlayer(t, g, 779, 579)
	g.Tick(hold(cfg.ActionMoveDown, cfg.ActionMoveRight))
	if obj := playerObject(t, g); obj.X != 780 || obj.Y != 580 {
		t.Fatalf("player at (%v, %v), want (780, 580)", obj.X, obj.Y)
	}
}

func TestDiagonalMovementIsNotNormalized(t *testing.T) {
	g := newEmptyGame(t)
	g.Tick(hold(cfg.ActionMoveDown, cfg.ActionMoveRight))

	if obj := playerObject(t, g); obj.X != 53 || obj.Y != 53 {
		t.Fatalf("player at (%v, %v), want (53, 53)", obj.X, obj.Y)
	}
}

func TestCoinCollectionIsIdempotent(t *testing.T) {
	g := newEmptyGame(t)
	factory.CreateCoin(g.ecs, 55, 55)

	r := g.Tick(hold())
	if r.Score != cfg.Coin.Score || r.CoinsLeft != 0 {
		t.Fatalf("after pickup: score %d, coins left %d", r.Score, r.CoinsLeft)
	}

	r = g.Tick(hold())
	if r.Score != cfg.Coin.Score {
		t.Fatalf("collected coin scored again: %d", r.Score)
	}
	if n := count(g, tags.Coin); n != 1 {
		t.Fatalf("collected coin should stay in the world, got %d coins", n)
	}
}

func TestCoinTouchingEdgeIsNotCollected(t *testing.T) {
	g := newEmptyGame(t)
	factory.CreateCoin(g.ecs, 70, 50)

	if r := g.Tick(hold()); r.Score != 0 {
		t.Fatalf("edge contact scored %d", r.Score)
	}
}

func TestPowerUpHealIsCapped(t *testing.T) {
	cases := []struct {
		start, want int
	}{
		{50, 70},
		{90, 100},
	}
	for _, tc := range cases {
		g := newEmptyGame(t)
		setHealth(t, g, tc.start)
		factory.CreatePowerUp(g.ecs, 55, 55)

		r := g.Tick(hold())
		if r.Health != tc.want {
			t.Fatalf("start %d: health %d, want %d", tc.start, r.Health, tc.want)
		}
		if n := count(g, tags.PowerUp); n != 0 {
			t.Fatalf("power-up should be consumed, %d left", n)
		}
	}
}

func TestEnemyContactDamage(t *testing.T) {
	g := newEmptyGame(t)
	factory.CreateEnemy(g.ecs, 0, 60, 60, 0, 0)

	r := g.Tick(hold())
	if r.Health != cfg.Player.Health-cfg.Enemy.ContactDamage {
		t.Fatalf("health %d after contact", r.Health)
	}
	r = g.Tick(hold())
	if r.Health != cfg.Player.Health-2*cfg.Enemy.ContactDamage {
		t.Fatalf("contact damage should repeat every tick, health %d", r.Health)
	}
}

func TestKillingEnemy(t *testing.T) {
	cases := []struct {
		start, want int
	}{
		{50, 60},
		{95, 100},
	}
	for _, tc := range cases {
		g := newEmptyGame(t)
		movePlayer(t, g, 100, 100)
		setHealth(t, g, tc.start)

		// Overlaps the weapon held on the right but not the player
		enemy := factory.CreateEnemy(g.ecs, 0, 121, 100, 0, 0)
		components.Health.Get(enemy).Current = cfg.Weapon.Damage

		r := g.Tick(hold(cfg.ActionAttack))
		if r.Enemies != 0 {
			t.Fatalf("enemy should be removed, %d left", r.Enemies)
		}
		if r.Score != cfg.Enemy.KillScore {
			t.Fatalf("score %d, want %d", r.Score, cfg.Enemy.KillScore)
		}
		if r.Health != tc.want {
			t.Fatalf("start %d: health %d, want %d", tc.start, r.Health, tc.want)
		}

		explosion, ok := tags.Explosion.First(g.ecs.World)
		if !ok {
			t.Fatal("kill should leave an explosion")
		}
		ex := components.Explosion.Get(explosion)
		if ex.X != 131 || ex.Y != 110 {
			t.Fatalf("explosion at (%v, %v), want enemy center (131, 110)", ex.X, ex.Y)
		}

		g.Tick(hold())
		if n := count(g, tags.Explosion); n != 0 {
			t.Fatalf("explosion should last one frame, %d left", n)
		}
	}
}

func TestWeaponDamagesOnlyWhileAttacking(t *testing.T) {
	g := newEmptyGame(t)
	movePlayer(t, g, 100, 100)
	enemy := factory.CreateEnemy(g.ecs, 0, 121, 100, 0, 0)

	g.Tick(hold())
	if hp := components.Health.Get(enemy).Current; hp != cfg.Enemy.BaseHealth {
		t.Fatalf("idle weapon dealt damage, enemy at %d", hp)
	}

	g.Tick(hold(cfg.ActionAttack))
	if hp := components.Health.Get(enemy).Current; hp != cfg.Enemy.BaseHealth-cfg.Weapon.Damage {
		t.Fatalf("enemy at %d after one hit", hp)
	}
}

func TestWeaponAndShieldPlacement(t *testing.T) {
	g := newEmptyGame(t)
	movePlayer(t, g, 100, 100)

	weaponEntry, _ := tags.Weapon.First(g.ecs.World)
	shieldEntry, _ := tags.Shield.First(g.ecs.World)
	weapon := components.Object.Get(weaponEntry)
	shield := components.Object.Get(shieldEntry)

	g.Tick(hold(cfg.ActionAttack, cfg.ActionShield))
	if weapon.X != 120 || weapon.Y != 100 {
		t.Fatalf("weapon at (%v, %v), want (120, 100)", weapon.X, weapon.Y)
	}
	if shield.X != 70 || shield.Y != 100 {
		t.Fatalf("shield at (%v, %v), want (70, 100)", shield.X, shield.Y)
	}
	if !components.Weapon.Get(weaponEntry).Active || !components.Shield.Get(shieldEntry).Active {
		t.Fatal("held weapon and shield should be active")
	}

	// Facing sticks after the direction is released
	g.Tick(hold(cfg.ActionMoveLeft))
	g.Tick(hold(cfg.ActionAttack))
	px := playerObject(t, g).X
	if weapon.X != px-cfg.Weapon.Width {
		t.Fatalf("weapon at %v, want left of player at %v", weapon.X, px-cfg.Weapon.Width)
	}
	if components.Shield.Get(shieldEntry).Active {
		t.Fatal("released shield should be inactive")
	}
}

func arrowAtPlayer(t *testing.T, g *Game) {
	t.Helper()
	owner := factory.CreateEnemy(g.ecs, 0, 400, 400, 0, 0)
	arrow := factory.CreateArrow(g.ecs, owner, 50, 50)
	factory.Destroy(g.ecs, owner)

	obj := components.Object.Get(arrow)
	obj.X, obj.Y = 55, 57
	components.Physics.SetValue(arrow, components.PhysicsData{})
}

func TestArrowBlockedByShield(t *testing.T) {
	g := newEmptyGame(t)
	arrowAtPlayer(t, g)

	r := g.Tick(hold(cfg.ActionShield))
	if r.Health != cfg.Player.Health {
		t.Fatalf("shielded arrow dealt damage, health %d", r.Health)
	}
	if r.Arrows != 0 {
		t.Fatalf("arrow should be destroyed, %d left", r.Arrows)
	}
}

func TestArrowHitsUnshieldedPlayer(t *testing.T) {
	g := newEmptyGame(t)
	arrowAtPlayer(t, g)

	r := g.Tick(hold())
	if r.Health != cfg.Player.Health-cfg.Arrow.Damage {
		t.Fatalf("health %d, want %d", r.Health, cfg.Player.Health-cfg.Arrow.Damage)
	}
	if r.Arrows != 0 {
		t.Fatalf("arrow should be destroyed, %d left", r.Arrows)
	}
}

func TestArrowAimsAtPlayer(t *testing.T) {
	g := newEmptyGame(t)
	owner := factory.CreateEnemy(g.ecs, 0, 250, 150, 0, 0)
	arrow := factory.CreateArrow(g.ecs, owner, 50, 50)

	obj := components.Object.Get(arrow)
	if obj.X != 250 || obj.Y != 158 {
		t.Fatalf("arrow launched at (%v, %v), want (250, 158)", obj.X, obj.Y)
	}
	physics := components.Physics.Get(arrow)
	if physics.SpeedX != -2 || physics.SpeedY != -1 {
		t.Fatalf("arrow velocity (%v, %v), want (-2, -1)", physics.SpeedX, physics.SpeedY)
	}
}

func TestArrowLeavingCanvasIsDropped(t *testing.T) {
	g := newEmptyGame(t)
	owner := factory.CreateEnemy(g.ecs, 0, 400, 400, 0, 0)
	arrow := factory.CreateArrow(g.ecs, owner, 50, 50)
	factory.Destroy(g.ecs, owner)

	obj := components.Object.Get(arrow)
	obj.X, obj.Y = 795, 300
	components.Physics.SetValue(arrow, components.PhysicsData{SpeedX: 10})

	if r := g.Tick(hold()); r.Arrows != 0 {
		t.Fatalf("off-canvas arrow kept, %d left", r.Arrows)
	}
}

func TestDeathHaltsTick(t *testing.T) {
	g := newEmptyGame(t)
	arrowAtPlayer(t, g)
	setHealth(t, g, 1)
	factory.CreateEnemy(g.ecs, 0, 50, 50, 0, 0)

	r := g.Tick(hold())
	if r.Status != cfg.RunDead || r.Deaths != 1 || r.Health != 0 {
		t.Fatalf("unexpected report after death %+v", r)
	}
	if r.Arrows != 1 {
		t.Fatal("arrows should not be processed after the player died")
	}

	before := playerObject(t, g).X
	r2 := g.Tick(hold(cfg.ActionMoveRight))
	if r2.Tick != r.Tick || playerObject(t, g).X != before || r2.Deaths != 1 {
		t.Fatal("an ended run must not tick")
	}
}

func TestTimeoutHaltsTicking(t *testing.T) {
	g := newEmptyGame(t)
	systems.GetRun(g.ecs).TimeLeft = 0.01

	r := g.Tick(hold())
	if r.Status != cfg.RunTimedOut || r.TimeLeft != 0 {
		t.Fatalf("unexpected report %+v", r)
	}

	before := playerObject(t, g).X
	r2 := g.Tick(hold(cfg.ActionMoveRight))
	if r2.Tick != r.Tick || playerObject(t, g).X != before {
		t.Fatal("timed out run kept ticking")
	}
}

func TestTimerCountsDown(t *testing.T) {
	g := newEmptyGame(t)
	r := g.Tick(hold())
	want := cfg.Run.TimeLimit - cfg.Run.TimeStep
	if r.TimeLeft != want {
		t.Fatalf("time %v, want %v", r.TimeLeft, want)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := NewGame(DefaultOptions())
	run := systems.GetRun(g.ecs)
	run.Score = 80
	run.Deaths = 2
	run.LevelIndex = 3
	run.CheckpointCollected = true
	run.TimeLeft = 12
	run.Status = cfg.RunDead

	g.Restart()
	r := g.Report()
	if r.Status != cfg.RunPlaying || r.Score != 0 || r.Deaths != 0 || r.LevelIndex != 0 ||
		r.CheckpointCollected || r.TimeLeft != cfg.Run.TimeLimit {
		t.Fatalf("unexpected report after restart %+v", r)
	}
	if r.Enemies != 2 || r.CoinsLeft != 3 {
		t.Fatalf("restart should rebuild level 0, got %d enemies and %d coins", r.Enemies, r.CoinsLeft)
	}
}

func TestRestartActionIsEdgeTriggered(t *testing.T) {
	g := newEmptyGame(t)
	systems.GetRun(g.ecs).Score = 30

	r := g.Tick(hold(cfg.ActionRestart))
	if r.Score != 0 || r.Status != cfg.RunPlaying {
		t.Fatalf("restart action ignored: %+v", r)
	}

	systems.GetRun(g.ecs).Score = 30
	if r = g.Tick(hold(cfg.ActionRestart)); r.Score != 30 {
		t.Fatal("held restart should not fire again")
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	g := NewGame(DefaultOptions())
	movePlayer(t, g, 750, 550)

	r := g.Tick(hold())
	if r.LevelIndex != 1 {
		t.Fatalf("level %d, want 1", r.LevelIndex)
	}
	if r.Enemies != 3 || r.CoinsLeft != 4 {
		t.Fatalf("level 1 has %d enemies and %d coins, want 3 and 4", r.Enemies, r.CoinsLeft)
	}
	if r.TimeLeft != cfg.Run.TimeLimit-cfg.Run.TimeStep {
		t.Fatalf("timer should restart with the level, got %v", r.TimeLeft)
	}
	if obj := playerObject(t, g); obj.X != 50 || obj.Y != 50 {
		t.Fatalf("player should respawn, at (%v, %v)", obj.X, obj.Y)
	}
}

func TestGoalOnLastLevelWins(t *testing.T) {
	g := newEmptyGame(t, testLevel(0, 0, false), testLevel(0, 0, false))

	movePlayer(t, g, 750, 550)
	if r := g.Tick(hold()); r.LevelIndex != 1 || r.Status != cfg.RunPlaying {
		t.Fatalf("unexpected report %+v", r)
	}

	movePlayer(t, g, 750, 550)
	r := g.Tick(hold())
	if r.Status != cfg.RunWon {
		t.Fatalf("status %v, want won", r.Status)
	}
	if g.Continue() {
		t.Fatal("a won run cannot be continued")
	}
}

func TestCheckpointSurvivesUntilThirdDeath(t *testing.T) {
	g := newEmptyGame(t, testLevel(0, 0, false), testLevel(0, 0, true))

	movePlayer(t, g, 750, 550)
	g.Tick(hold())
	if n := count(g, tags.Checkpoint); n != 1 {
		t.Fatalf("checkpoint level should spawn the checkpoint, got %d", n)
	}

	movePlayer(t, g, 395, 295)
	r := g.Tick(hold())
	if !r.CheckpointCollected || count(g, tags.Checkpoint) != 0 {
		t.Fatalf("checkpoint not collected: %+v", r)
	}

	for death := 1; death <= 2; death++ {
		r = killPlayer(t, g)
		if r.Status != cfg.RunDead || r.Deaths != death || !r.CheckpointCollected {
			t.Fatalf("death %d: %+v", death, r)
		}
		if !g.Continue() {
			t.Fatal("continue refused after death")
		}
		r = g.Report()
		if r.LevelIndex != 1 || r.Score != 0 || r.Health != cfg.Player.Health {
			t.Fatalf("continue should resume at the checkpoint level: %+v", r)
		}
		if n := count(g, tags.Checkpoint); n != 0 {
			t.Fatal("collected checkpoint respawned")
		}
	}

	r = killPlayer(t, g)
	if r.Deaths != 3 || r.CheckpointCollected {
		t.Fatalf("third death should clear the checkpoint: %+v", r)
	}
	g.Continue()
	if r = g.Report(); r.LevelIndex != 0 || r.Deaths != 3 {
		t.Fatalf("continue without checkpoint should resume at level 0: %+v", r)
	}
}

func TestContinueRequiresLoss(t *testing.T) {
	g := newEmptyGame(t)
	if g.Continue() {
		t.Fatal("continue should be refused while playing")
	}

	systems.GetRun(g.ecs).TimeLeft = 0.01
	g.Tick(hold())
	if r := g.Tick(hold(cfg.ActionContinue)); r.Status != cfg.RunPlaying {
		t.Fatalf("continue action after timeout: %+v", r)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := NewGame(Options{Seed: 42})
	b := NewGame(Options{Seed: 42})

	var ra, rb components.Report
	for i := 0; i < 600; i++ {
		in := hold(cfg.ActionMoveRight, cfg.ActionAttack)
		ra = a.Tick(in)
		rb = b.Tick(in)
	}
	if ra != rb {
		t.Fatalf("runs diverged:\n%+v\n%+v", ra, rb)
	}
}
