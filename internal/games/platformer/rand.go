package platformer

// Rand is the source of randomness for every probabilistic decision in the
// simulation. *rand.Rand satisfies it; tests substitute scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// chance draws once and reports whether the draw fell under p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// between draws a float uniformly from [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// betweenInt draws an int uniformly from [lo, hi].
func betweenInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
