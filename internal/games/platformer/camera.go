package platformer

// Camera is the horizontal scroll offset. It only ever moves right.
type Camera struct {
	x    float64
	lead float64
}

// NewCamera creates a camera that keeps the player lead units from the
// left edge of the viewport.
func NewCamera(lead float64) Camera {
	return Camera{lead: lead}
}

// Track advances the camera toward playerX - lead, never backwards.
func (c *Camera) Track(playerX float64) {
	if target := playerX - c.lead; target > c.x {
		c.x = target
	}
}

// X returns the camera offset.
func (c Camera) X() float64 {
	return c.x
}
