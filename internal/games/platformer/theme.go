package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Theme is a named bundle of palette, hazard roster and decoration motif
// applied to a stretch of generated world.
type Theme struct {
	Name     string
	Ground   core.Color
	Platform core.Color
	Hazard   core.Color
	Accent   core.Color // pickups and pickup bursts
	Decor    core.Color
	Hazards  []EntityKind
	Motif    Motif
}

// Themes is the fixed, ordered theme table.
var Themes = []Theme{
	{
		Name:     "Meadow",
		Ground:   core.ColorGreen,
		Platform: core.ColorYellow,
		Hazard:   core.ColorRed,
		Accent:   core.ColorBrightYellow,
		Decor:    core.ColorBrightMagenta,
		Hazards:  []EntityKind{KindWalker, KindSlime, KindSpike},
		Motif:    MotifFlower,
	},
	{
		Name:     "Desert",
		Ground:   core.ColorYellow,
		Platform: core.ColorOrange,
		Hazard:   core.ColorBrightRed,
		Accent:   core.ColorBrightCyan,
		Decor:    core.ColorGreen,
		Hazards:  []EntityKind{KindWalker, KindSpike, KindFlyer},
		Motif:    MotifCactus,
	},
	{
		Name:     "Cavern",
		Ground:   core.ColorGray,
		Platform: core.ColorBlue,
		Hazard:   core.ColorMagenta,
		Accent:   core.ColorBrightGreen,
		Decor:    core.ColorBrightCyan,
		Hazards:  []EntityKind{KindSlime, KindIcicle, KindFlyer},
		Motif:    MotifCrystal,
	},
	{
		Name:     "Tundra",
		Ground:   core.ColorBrightWhite,
		Platform: core.ColorCyan,
		Hazard:   core.ColorBlue,
		Accent:   core.ColorBrightMagenta,
		Decor:    core.ColorGreen,
		Hazards:  []EntityKind{KindWalker, KindIcicle, KindSpike},
		Motif:    MotifPine,
	},
	{
		Name:     "Night",
		Ground:   core.ColorBlue,
		Platform: core.ColorMagenta,
		Hazard:   core.ColorBrightRed,
		Accent:   core.ColorBrightYellow,
		Decor:    core.ColorBrightWhite,
		Hazards:  []EntityKind{KindFlyer, KindWalker, KindSlime},
		Motif:    MotifStar,
	},
}

// ThemeAt returns the theme for index, wrapping out-of-range values.
func ThemeAt(index int) Theme {
	n := len(Themes)
	return Themes[((index%n)+n)%n]
}

// ThemeScheduler switches the active theme once the generation cursor
// passes (index+1) theme distances. Past the last theme's threshold every
// check switches again.
type ThemeScheduler struct {
	index    int
	distance float64
	rng      Rand
}

// NewThemeScheduler starts at the first theme.
func NewThemeScheduler(distance float64, rng Rand) *ThemeScheduler {
	return &ThemeScheduler{distance: distance, rng: rng}
}

// Reset returns to the first theme.
func (s *ThemeScheduler) Reset() {
	s.index = 0
}

// Threshold returns the cursor position that triggers the next transition.
func (s *ThemeScheduler) Threshold() float64 {
	return float64(s.index+1) * s.distance
}

// Advance checks the cursor against the threshold and, when it is exceeded,
// moves to a different theme drawn uniformly from the rest of the table.
func (s *ThemeScheduler) Advance(cursor float64) bool {
	if cursor <= s.Threshold() {
		return false
	}

	n := len(Themes)
	if n < 2 {
		return false
	}
	next := s.rng.Intn(n - 1)
	if next >= s.index {
		next++
	}
	s.index = next
	return true
}

// Index returns the active theme index.
func (s *ThemeScheduler) Index() int {
	return s.index
}

// Theme returns the active theme.
func (s *ThemeScheduler) Theme() Theme {
	return ThemeAt(s.index)
}
