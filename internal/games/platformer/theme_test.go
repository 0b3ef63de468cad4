package platformer

import (
	"math/rand"
	"testing"
)

func TestThemeAtWraps(t *testing.T) {
	n := len(Themes)
	tests := []struct {
		index int
		want  string
	}{
		{0, Themes[0].Name},
		{n, Themes[0].Name},
		{n + 1, Themes[1].Name},
		{-1, Themes[n-1].Name},
	}

	for _, tt := range tests {
		if got := ThemeAt(tt.index).Name; got != tt.want {
			t.Errorf("ThemeAt(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestThemeRostersAreHazards(t *testing.T) {
	for _, th := range Themes {
		if len(th.Hazards) == 0 {
			t.Errorf("theme %s has an empty hazard roster", th.Name)
		}
		for _, k := range th.Hazards {
			if (Entity{Kind: k}).Class() != ClassHazard {
				t.Errorf("theme %s roster contains non-hazard %s", th.Name, k)
			}
		}
	}
}

func TestThemeSchedulerThreshold(t *testing.T) {
	s := NewThemeScheduler(1000, &scriptedRand{ints: []int{2, 0}})

	if s.Advance(1000) {
		t.Error("cursor equal to the threshold should not switch")
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}

	// Draw 2 skips the current index 0 and lands on 3.
	if !s.Advance(1001) {
		t.Fatal("crossing the threshold should switch")
	}
	if s.Index() != 3 {
		t.Fatalf("index = %d, want 3", s.Index())
	}
	if s.Threshold() != 4000 {
		t.Errorf("threshold at index 3 = %v, want 4000", s.Threshold())
	}
	if s.Advance(2500) || s.Advance(4000) {
		t.Error("no switch expected before cursor exceeds 4000")
	}

	// Draw 0 is below the current index and lands on 0.
	if !s.Advance(4001) {
		t.Fatal("crossing 4000 should switch")
	}
	if s.Index() != 0 {
		t.Fatalf("index = %d, want 0", s.Index())
	}
	if s.Threshold() != 1000 {
		t.Errorf("threshold at index 0 = %v, want 1000", s.Threshold())
	}
}

func TestThemeSchedulerNeverRepeats(t *testing.T) {
	s := NewThemeScheduler(100, rand.New(rand.NewSource(3)))

	for cursor := 0.0; cursor < 100000; cursor += 37 {
		prev := s.Index()
		if s.Advance(cursor) && s.Index() == prev {
			t.Fatalf("cursor %v: transition kept theme %d", cursor, prev)
		}
		if s.Index() < 0 || s.Index() >= len(Themes) {
			t.Fatalf("index %d out of range", s.Index())
		}
	}
}

func TestThemeSchedulerReset(t *testing.T) {
	s := NewThemeScheduler(100, &scriptedRand{ints: []int{2}})
	s.Advance(150)
	s.Reset()

	if s.Index() != 0 || s.Threshold() != 100 {
		t.Errorf("after Reset: index %d threshold %v", s.Index(), s.Threshold())
	}
}
