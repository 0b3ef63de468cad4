package platformer

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestGameLifecycle(t *testing.T) {
	g := NewWithConfig(testConfig(), rand.New(rand.NewSource(1)))
	g.Reset(core.DefaultConfig())

	if g.State().Phase != core.PhaseStart {
		t.Fatalf("phase after Reset = %q, want start", g.State().Phase)
	}

	// START does not tick.
	before := g.Snapshot()
	g.Step(heldFrame(core.ActionRight))
	if g.Snapshot().Tick != 0 || g.Snapshot().Player != before.Player {
		t.Error("simulation should not tick in START")
	}

	// The jump that starts the run is consumed.
	g.Step(frame(core.ActionJump))
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %q, want playing", g.State().Phase)
	}
	if !g.Snapshot().Player.Grounded || g.Snapshot().Tick != 0 {
		t.Error("start input should not be applied as a jump")
	}

	g.Step(frame())
	if g.Snapshot().Tick != 1 || g.State().Ticks != 1 {
		t.Errorf("tick = %d/%d, want 1", g.Snapshot().Tick, g.State().Ticks)
	}
}

func TestGamePause(t *testing.T) {
	g := startedGame(testConfig(), constRand(0.99))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	tick := g.Snapshot().Tick
	for i := 0; i < 10; i++ {
		g.Step(heldFrame(core.ActionRight))
	}
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not tick")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestGameJumpScenario(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))

	g.Step(frame(core.ActionJump))

	p := g.Snapshot().Player
	if p.VY != cfg.Physics.JumpForce {
		t.Errorf("vy = %v, want %v", p.VY, cfg.Physics.JumpForce)
	}
	if p.Grounded {
		t.Error("player should be airborne")
	}
}

func TestGameLongRunHoldsBounds(t *testing.T) {
	cfg := testConfig()
	g := NewWithConfig(cfg, rand.New(rand.NewSource(42)))
	g.Reset(core.DefaultConfig())
	inputs := rand.New(rand.NewSource(7))

	g.Step(frame(core.ActionConfirm))
	prev := g.Snapshot()
	runs := 1

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		if inputs.Intn(10) < 8 {
			in.Hold(core.ActionRight)
		} else if inputs.Intn(2) == 0 {
			in.Hold(core.ActionLeft)
		}
		if inputs.Intn(12) == 0 {
			in.Set(core.ActionJump)
		}

		res := g.Step(in)
		s := g.Snapshot()

		if res.RunEnded {
			if s.Score != prev.Score {
				t.Fatalf("tick %d: fatal tick changed score %d -> %d", i, prev.Score, s.Score)
			}
			if s.HighScore < s.Score {
				t.Fatalf("high score %d below final score %d", s.HighScore, s.Score)
			}
			g.Step(frame(core.ActionRestart))
			prev = g.Snapshot()
			runs++
			continue
		}

		if s.CameraX < prev.CameraX {
			t.Fatalf("tick %d: camera moved left %v -> %v", i, prev.CameraX, s.CameraX)
		}
		if s.Cursor < s.CameraX+cfg.World.ViewportW {
			t.Fatalf("tick %d: cursor %v behind viewport edge %v", i, s.Cursor, s.CameraX+cfg.World.ViewportW)
		}
		if math.Abs(s.Player.VX) > cfg.Physics.MaxSpeed {
			t.Fatalf("tick %d: |vx| %v above max", i, s.Player.VX)
		}
		size := cfg.Player.Small
		if s.Player.Big {
			size = cfg.Player.Big
		}
		if s.Player.W != size.W || s.Player.H != size.H {
			t.Fatalf("tick %d: size %vx%v does not match big=%v", i, s.Player.W, s.Player.H, s.Player.Big)
		}
		if s.Score < prev.Score {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev.Score, s.Score)
		}
		for _, e := range s.Entities {
			if !e.Active {
				t.Fatalf("tick %d: inactive entity %d survived the cull", i, e.ID)
			}
		}
		prev = s
	}
	t.Logf("%d runs, final score %d, high score %d", runs, prev.Score, g.State().HighScore)
}

func TestGameSmallSideHitEndsRun(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	g.bonus = 100
	g.Step(frame())
	if g.State().Score != 100 {
		t.Fatalf("pre-collision score = %d, want 100", g.State().Score)
	}

	ground := cfg.World.GroundLine
	g.entities.Spawn(Entity{Kind: KindWalker, X: g.player.X + 20, Y: ground - 28, W: 30, H: 28, VX: -1})

	res := g.Step(heldFrame(core.ActionRight))

	if !res.RunEnded {
		t.Fatal("side hit on a small player should end the run")
	}
	st := res.State
	if st.Phase != core.PhaseGameOver || !st.GameOver {
		t.Errorf("phase = %q gameOver = %v", st.Phase, st.GameOver)
	}
	if st.Score != 100 {
		t.Errorf("score = %d, want unchanged 100", st.Score)
	}
	if st.HighScore != 100 {
		t.Errorf("high score = %d, want 100", st.HighScore)
	}

	// GAME_OVER does not tick.
	tick := g.Snapshot().Tick
	g.Step(heldFrame(core.ActionRight))
	if g.Snapshot().Tick != tick {
		t.Error("simulation should not tick in GAME_OVER")
	}
}

func TestGameBigSideHitShrinks(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	ground := cfg.World.GroundLine
	g.controller.Grow(&g.player)
	g.player.Y = ground - g.player.H

	g.entities.Spawn(Entity{Kind: KindWalker, X: g.player.X + 20, Y: ground - 28, W: 30, H: 28, VX: -1})
	res := g.Step(frame())

	if res.RunEnded || res.State.Phase != core.PhasePlaying {
		t.Fatal("big player should survive a side hit")
	}
	p := g.Snapshot().Player
	if p.Big || !p.Invulnerable {
		t.Errorf("big=%v invulnerable=%v, want small and invulnerable", p.Big, p.Invulnerable)
	}

	// Standing inside the walker while invulnerable changes nothing.
	for i := 0; i < 5; i++ {
		if g.Step(frame()).RunEnded {
			t.Fatal("invulnerable player should not die")
		}
	}
}

func TestGameStompAddsBonus(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	ground := cfg.World.GroundLine

	// Falling onto a slime: bottom ends 5 units into its top this tick.
	slimeTop := ground - 20
	g.player.Y = slimeTop + 5 - g.player.H - (cfg.Physics.Gravity + 3)
	g.player.VY = 3
	g.player.Grounded = false
	g.entities.Spawn(Entity{Kind: KindSlime, X: g.player.X, Y: slimeTop, W: 30, H: 20})

	before := g.State().Score
	g.Step(frame())

	if got := g.State().Score; got != before+cfg.Combat.StompBonus {
		t.Errorf("score = %d, want %d", got, before+cfg.Combat.StompBonus)
	}
	if len(g.Snapshot().Entities) != 0 {
		t.Error("stomped slime should be culled")
	}
	if g.Snapshot().Player.VY != cfg.Combat.StompBounce {
		t.Errorf("vy = %v, want bounce", g.Snapshot().Player.VY)
	}
}

func TestGameStompBeforeFatalContactCounts(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	ground := cfg.World.GroundLine

	// Same fall as a plain stomp, but a spike overlaps the landing spot and
	// is resolved after the slime.
	slimeTop := ground - 20
	g.player.Y = slimeTop + 5 - g.player.H - (cfg.Physics.Gravity + 3)
	g.player.VY = 3
	g.player.Grounded = false
	g.entities.Spawn(Entity{Kind: KindSlime, X: g.player.X, Y: slimeTop, W: 30, H: 20})
	g.entities.Spawn(Entity{Kind: KindSpike, X: g.player.X + 5, Y: ground - 20, W: 30, H: 20})

	before := g.State().Score
	res := g.Step(frame())

	if !res.RunEnded {
		t.Fatal("spike contact should end the run")
	}
	want := before + cfg.Combat.StompBonus
	if res.State.Score != want {
		t.Errorf("score = %d, want %d", res.State.Score, want)
	}
	if res.State.HighScore != want {
		t.Errorf("high score = %d, want %d", res.State.HighScore, want)
	}
}

func TestGameScoreFollowsFurthestDistance(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))

	furthest := g.player.X
	prevScore := 0
	step := func(in core.InputFrame) {
		g.Step(in)
		furthest = math.Max(furthest, g.player.X)
		if g.State().Score < prevScore {
			t.Fatalf("score decreased %d -> %d", prevScore, g.State().Score)
		}
		prevScore = g.State().Score
	}

	for i := 0; i < 60; i++ {
		step(heldFrame(core.ActionRight))
	}
	for i := 0; i < 60; i++ {
		step(heldFrame(core.ActionLeft))
	}

	if g.player.X >= furthest {
		t.Fatalf("player should have walked back: x %v furthest %v", g.player.X, furthest)
	}
	want := int(math.Floor((furthest - cfg.Player.StartX) / cfg.Score.DistanceUnit))
	if got := g.State().Score; got != want {
		t.Errorf("score = %d, want %d from furthest x %v", got, want, furthest)
	}
}

func TestGameRestart(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	g.bonus = 250
	g.Step(frame())
	g.entities.Spawn(Entity{Kind: KindSpike, X: g.player.X, Y: cfg.World.GroundLine - 20, W: 30, H: 20})
	g.Step(frame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frame(core.ActionConfirm))
	if !g.State().GameOver {
		t.Error("only restart leaves GAME_OVER")
	}

	g.Step(frame(core.ActionRestart))

	st := g.State()
	if st.Phase != core.PhasePlaying {
		t.Errorf("phase = %q, want playing", st.Phase)
	}
	if st.Score != 0 || st.HighScore != 250 {
		t.Errorf("score %d high %d, want 0 and 250", st.Score, st.HighScore)
	}
	s := g.Snapshot()
	if s.Tick != 0 || s.Player.X != cfg.Player.StartX || s.Player.Big || s.ThemeIndex != 0 || s.CameraX != 0 {
		t.Errorf("restart should fully reset the run: %+v", s.Player)
	}
}

func TestGameHighScoreSurvivesReset(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))
	g.bonus = 300
	g.Step(frame())
	g.entities.Spawn(Entity{Kind: KindSpike, X: g.player.X, Y: cfg.World.GroundLine - 20, W: 30, H: 20})
	g.Step(frame())

	g.Reset(core.DefaultConfig())

	if g.State().HighScore != 300 {
		t.Errorf("high score = %d, want 300", g.State().HighScore)
	}
	if g.State().Phase != core.PhaseStart {
		t.Errorf("phase = %q, want start", g.State().Phase)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := NewWithConfig(testConfig(), rand.New(rand.NewSource(12345)))
		g.Reset(core.DefaultConfig())
		g.Step(frame(core.ActionConfirm))
		for i := 0; i < 400; i++ {
			in := heldFrame(core.ActionRight)
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).RunEnded {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different snapshots:\n%+v\n%+v", a.Player, b.Player)
	}
}

func TestGameUseConfigAppliesNextRun(t *testing.T) {
	cfg := testConfig()
	g := startedGame(cfg, constRand(0.99))

	next := testConfig()
	next.Player.StartX = 300
	g.UseConfig(next)

	g.Step(frame())
	if g.player.X == 300 {
		t.Fatal("config must not change the current run")
	}

	g.entities.Spawn(Entity{Kind: KindSpike, X: g.player.X, Y: cfg.World.GroundLine - 20, W: 30, H: 20})
	g.Step(frame())
	g.Step(frame(core.ActionRestart))

	if g.player.X != 300 {
		t.Errorf("player X = %v, want new start 300", g.player.X)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := startedGame(testConfig(), constRand(0))
	s := g.Snapshot()
	if len(s.Entities) == 0 {
		t.Fatal("expected generated entities")
	}

	s.Entities[0].X = -999
	if g.entities.Entities()[0].X == -999 {
		t.Error("mutating the snapshot changed the game")
	}
}

func TestGameRender(t *testing.T) {
	g := startedGame(testConfig(), rand.New(rand.NewSource(3)))
	for i := 0; i < 30; i++ {
		g.Step(heldFrame(core.ActionRight))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), GroundChar) {
		t.Error("ground line missing")
	}
	if !strings.ContainsRune(screen.String(), PlayerBody) {
		t.Error("player missing")
	}
}

func TestGameRenderDrawsSnapshot(t *testing.T) {
	g := startedGame(testConfig(), constRand(0.99))
	s := g.Snapshot()
	s.Score = 4242
	s.Player.X = s.CameraX + 400

	screen := core.NewScreen(80, 24)
	g.renderSnapshot(screen, s)

	if !strings.Contains(screen.Row(0), "Score: 4242") {
		t.Errorf("HUD should show the snapshot score: %q", screen.Row(0))
	}
	if g.State().Score == 4242 || g.player.X == s.Player.X {
		t.Error("rendering a snapshot must not touch the game")
	}

	// Render and renderSnapshot of the live state agree.
	live := core.NewScreen(80, 24)
	g.Render(live)
	want := core.NewScreen(80, 24)
	g.renderSnapshot(want, g.Snapshot())
	if live.String() != want.String() {
		t.Error("Render differs from rendering the current snapshot")
	}
}

func TestGameRenderStartScreen(t *testing.T) {
	g := NewWithConfig(testConfig(), constRand(0.99))
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "ENDLESS PLATFORMER") {
		t.Error("start screen title missing")
	}
}

func TestGameRegistered(t *testing.T) {
	g := New()
	if g.ID() != "platformer" {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title should not be empty")
	}
}
