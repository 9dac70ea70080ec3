package ui

import (
	"fmt"

	"torus-life/internal/sims/life"
)

// Status summarizes the universe for the on-screen overlay.
func Status(u *life.Universe, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d/%d", u.Generation(), u.Population(), u.Width()*u.Height())
	if paused {
		s += "  [paused]"
	}
	return s
}
