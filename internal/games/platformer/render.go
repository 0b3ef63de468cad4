package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody    = '█'
	PlayerFaceR   = '▶'
	PlayerFaceL   = '◀'
	GroundChar    = '═'
	SoilChar      = '░'
	PlatformChar  = '▓'
	PickupChar    = '✚'
	ParticleChar  = '·'
	FallbackChar  = '?'
	hudRows       = 1
	starElevation = 220 // world units above the ground line
)

var kindGlyphs = map[EntityKind]rune{
	KindWalker: 'Ѫ',
	KindSlime:  '◒',
	KindSpike:  '▲',
	KindIcicle: '▼',
	KindFlyer:  'ᴥ',
}

var motifGlyphs = map[Motif]rune{
	MotifFlower:  '✿',
	MotifCactus:  '¥',
	MotifCrystal: '◆',
	MotifPine:    '♣',
	MotifStar:    '✦',
}

// projection maps world coordinates onto screen cells.
type projection struct {
	camX   float64
	sx, sy float64
}

func (g *Game) projection(dst *core.Screen, cameraX float64) projection {
	world := g.cfg.World
	rows := dst.Height() - hudRows
	return projection{
		camX: cameraX,
		sx:   float64(dst.Width()) / world.ViewportW,
		sy:   float64(rows) / world.ViewportH,
	}
}

func (p projection) point(x, y float64) (int, int) {
	return int(math.Floor((x - p.camX) * p.sx)), hudRows + int(math.Floor(y*p.sy))
}

// rect projects a world box, keeping at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.point(b.X, b.Y)
	x1, y1 := p.point(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the post-tick snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.themes == nil {
		return
	}
	g.renderSnapshot(dst, g.Snapshot())
}

func (g *Game) renderSnapshot(dst *core.Screen, s Snapshot) {
	theme := s.Theme
	proj := g.projection(dst, s.CameraX)

	g.drawTerrain(dst, proj, theme)
	for _, d := range s.Decorations {
		drawDecoration(dst, proj, d, theme)
	}
	for _, e := range s.Entities {
		if e.Active {
			drawEntity(dst, proj, e, theme)
		}
	}
	drawPlayer(dst, proj, s.Player)
	for _, p := range s.Particles {
		x, y := proj.point(p.X, p.Y)
		dst.SetColored(x, y, ParticleChar, p.Color)
	}

	drawHUD(dst, s)

	switch {
	case s.Phase == core.PhaseStart:
		drawCenteredMessage(dst, "ENDLESS PLATFORMER", "Space/Enter to start  |  ←/→ run  |  Space jump")
	case s.Phase == core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", s.Score, s.HighScore))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawTerrain(dst *core.Screen, proj projection, theme Theme) {
	_, groundY := proj.point(0, g.cfg.World.GroundLine)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, theme.Ground)
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorGray)
	}
}

func drawDecoration(dst *core.Screen, proj projection, d Decoration, theme Theme) {
	glyph, ok := motifGlyphs[d.Motif]
	if !ok {
		return
	}
	y := d.Y
	if d.Motif == MotifStar {
		y -= starElevation
	}
	x, sy := proj.point(d.X, y)
	dst.SetColored(x, sy-1, glyph, theme.Decor)
}

func drawEntity(dst *core.Screen, proj projection, e Entity, theme Theme) {
	r := proj.rect(e.Box())
	switch e.Class() {
	case ClassPlatform:
		dst.DrawRect(r, PlatformChar, theme.Platform)
	case ClassPickup:
		dst.DrawRect(r, PickupChar, theme.Accent)
	default:
		glyph, ok := kindGlyphs[e.Kind]
		if !ok {
			glyph = FallbackChar
		}
		dst.DrawRect(r, glyph, theme.Hazard)
	}
}

func drawPlayer(dst *core.Screen, proj projection, p Player) {
	// Blink while invulnerable.
	if p.Invulnerable && (p.InvulnTicks/4)%2 == 1 {
		return
	}
	color := core.ColorBrightWhite
	if p.Big {
		color = core.ColorBrightCyan
	}
	r := proj.rect(p.Box())
	dst.DrawRect(r, PlayerBody, color)

	face := PlayerFaceR
	fx := r.Right() - 1
	if !p.FacingRight {
		face = PlayerFaceL
		fx = r.X
	}
	dst.SetColored(fx, r.Y, face, color)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.HighScore)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" %s ", s.Theme.Name)
	if s.Progression {
		right = fmt.Sprintf(" Lvl: %.0f%%  %s ", s.Level*100, s.Theme.Name)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, s.Theme.Accent)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))
	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-subLen)/2, box.Y+3, subtitle)
}
