package engine

import "math"

const (
	// XPPerTask is the flat award for completing one routine task.
	XPPerTask = 10

	// xpBaseCost is the level 1 threshold; a brand-new user levels up after
	// ten tasks, which keeps early progress visible.
	xpBaseCost = 100

	// xpCurveExp makes each level progressively more expensive.
	xpCurveExp = 1.6
)

// XPForNextLevel returns the XP threshold to advance past the given level:
// floor(100 * level^1.6). Strictly increasing, never zero or negative.
func XPForNextLevel(level int) int {
	if level <= 1 {
		return xpBaseCost
	}
	return int(math.Floor(xpBaseCost * math.Pow(float64(level), xpCurveExp)))
}

// applyXP runs the level cascade: add delta to xp, then repeatedly subtract
// the current threshold and bump the level until xp fits under it again.
// Every level crossed is returned so callers can announce each one.
func applyXP(xp, level, delta int) (newXP, newLevel int, levelsGained []int) {
	if level < 1 {
		level = 1
	}
	if delta < 0 {
		delta = 0
	}
	xp += delta
	for xp >= XPForNextLevel(level) {
		xp -= XPForNextLevel(level)
		level++
		levelsGained = append(levelsGained, level)
	}
	return xp, level, levelsGained
}
