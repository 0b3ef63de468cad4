package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// scriptedRand replays fixed sequences, cycling when exhausted.
// An empty floats list yields 0.5; an empty ints list yields 0.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

// constRand returns v for every float draw.
func constRand(v float64) *scriptedRand {
	return &scriptedRand{floats: []float64{v}}
}

func testConfig() config.PlatformerConfig {
	return config.DefaultPlatformerConfig()
}

func newTestController() (*PlayerController, config.PlatformerConfig) {
	cfg := testConfig()
	return NewPlayerController(cfg.Physics, cfg.Player), cfg
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func heldFrame(held ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range held {
		in.Hold(a)
	}
	return in
}

// startedGame returns a game on its first playing tick with no world
// content generated ahead (constRand(0.99) fails every spawn roll).
func startedGame(cfg config.PlatformerConfig, rng Rand) *Game {
	g := NewWithConfig(cfg, rng)
	g.Reset(core.DefaultConfig())
	g.Step(frame(core.ActionConfirm))
	return g
}
