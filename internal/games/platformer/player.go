package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the player's physics and status state.
// W and H always equal one of the two size presets, matching Big.
type Player struct {
	X, Y         float64
	VX, VY       float64
	W, H         float64
	Grounded     bool
	Big          bool
	Invulnerable bool
	InvulnTicks  int
	FacingRight  bool
	Phase        float64 // run animation phase
}

// Box returns the full sprite box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// HitBox returns the sprite box shrunk horizontally by inset on each side.
func (p Player) HitBox(inset float64) core.Box {
	return p.Box().InsetX(inset)
}

// Controls is the per-tick input the controller consumes.
type Controls struct {
	Left  bool // held
	Right bool // held
	Jump  bool // edge: pressed since the previous tick
}

// ControlsFrom samples an input frame.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Left:  in.IsHeld(core.ActionLeft),
		Right: in.IsHeld(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// PlayerController integrates the player's physics.
type PlayerController struct {
	physics config.PhysicsConfig
	cfg     config.PlayerConfig
}

// NewPlayerController creates a controller with the given constants.
func NewPlayerController(physics config.PhysicsConfig, cfg config.PlayerConfig) *PlayerController {
	return &PlayerController{physics: physics, cfg: cfg}
}

// Spawn returns a small, grounded player at the start position.
func (pc *PlayerController) Spawn(groundLine float64) Player {
	return Player{
		X:           pc.cfg.StartX,
		Y:           groundLine - pc.cfg.Small.H,
		W:           pc.cfg.Small.W,
		H:           pc.cfg.Small.H,
		Grounded:    true,
		FacingRight: true,
	}
}

// Update advances the player by one tick. Platform landing reads the
// entity collection but never mutates it.
func (pc *PlayerController) Update(p *Player, in Controls, groundLine float64, entities []Entity) {
	ph := pc.physics

	switch {
	case in.Right:
		p.VX += ph.Accel
		p.FacingRight = true
	case in.Left:
		p.VX -= ph.Accel
		p.FacingRight = false
	default:
		p.VX *= ph.Friction
	}
	p.VX = core.ClampF(p.VX, -ph.MaxSpeed, ph.MaxSpeed)
	if math.Abs(p.VX) < ph.Deadzone {
		p.VX = 0
	}

	p.X += p.VX
	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}

	prevBottom := p.Y + p.H
	p.VY += ph.Gravity
	p.Y += p.VY

	if p.Y+p.H > groundLine {
		p.Y = groundLine - p.H
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}

	pc.landOnPlatforms(p, prevBottom, entities)

	// Jump is consumed after contact resolution so it sees this tick's
	// grounded state; a press while airborne is dropped.
	if in.Jump && p.Grounded {
		p.VY = ph.JumpForce
		p.Grounded = false
	}

	if p.Invulnerable {
		p.InvulnTicks--
		if p.InvulnTicks <= 0 {
			p.InvulnTicks = 0
			p.Invulnerable = false
		}
	}

	pc.animate(p)
}

// landOnPlatforms snaps a descending player onto a platform top it crossed
// this tick. It can override the ground test.
func (pc *PlayerController) landOnPlatforms(p *Player, prevBottom float64, entities []Entity) {
	if p.VY < 0 {
		return
	}
	inset := pc.cfg.PlatformInset
	for i := range entities {
		e := &entities[i]
		if !e.Active || e.Class() != ClassPlatform {
			continue
		}
		top := e.Y
		if prevBottom > top+pc.cfg.LandingEpsilon || p.Y+p.H < top {
			continue
		}
		if p.X+inset >= e.X+e.W || p.X+p.W-inset <= e.X {
			continue
		}
		p.Y = top - p.H
		p.VY = 0
		p.Grounded = true
		return
	}
}

func (pc *PlayerController) animate(p *Player) {
	speed := math.Abs(p.VX)
	switch {
	case !p.Grounded:
		p.Phase = pc.cfg.AirPhase
	case speed > pc.cfg.AnimMinSpeed:
		p.Phase = math.Mod(p.Phase+speed*pc.cfg.AnimRate, 2*math.Pi)
	default:
		p.Phase = 0
	}
}

// Grow switches a small player to the big preset. It returns false and
// changes nothing if the player is already big.
func (pc *PlayerController) Grow(p *Player) bool {
	if p.Big {
		return false
	}
	p.Big = true
	p.W, p.H = pc.cfg.Big.W, pc.cfg.Big.H
	p.Y -= pc.cfg.GrowNudge
	return true
}

// Shrink switches a big player to the small preset and starts the
// invulnerability countdown.
func (pc *PlayerController) Shrink(p *Player) {
	p.Big = false
	p.W, p.H = pc.cfg.Small.W, pc.cfg.Small.H
	p.Y += pc.cfg.ShrinkNudge
	p.Invulnerable = true
	p.InvulnTicks = pc.cfg.InvulnerableTicks
}
