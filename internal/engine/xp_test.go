package engine

import "testing"

func TestXPForNextLevelBaseline(t *testing.T) {
	if got := XPForNextLevel(1); got != 100 {
		t.Fatalf("XPForNextLevel(1)=%d, want 100", got)
	}
	if got := XPForNextLevel(0); got != 100 {
		t.Fatalf("XPForNextLevel(0)=%d, want 100", got)
	}
}

func TestXPForNextLevelMonotonic(t *testing.T) {
	prev := 0
	for level := 1; level <= 60; level++ {
		got := XPForNextLevel(level)
		if got <= 0 {
			t.Fatalf("XPForNextLevel(%d)=%d, want > 0", level, got)
		}
		if got <= prev {
			t.Fatalf("XPForNextLevel(%d)=%d not greater than XPForNextLevel(%d)=%d", level, got, level-1, prev)
		}
		prev = got
	}
}

func TestApplyXPInvariant(t *testing.T) {
	cases := []struct {
		xp, level, delta int
	}{
		{0, 1, 0},
		{0, 1, 99},
		{0, 1, 100},
		{50, 1, 49},
		{50, 1, 50},
		{99, 1, 1},
		{0, 1, 10_000},
		{200, 3, 500},
		{0, 10, 3},
	}
	for _, tc := range cases {
		xp, level, gained := applyXP(tc.xp, tc.level, tc.delta)
		if xp < 0 || xp >= XPForNextLevel(level) {
			t.Fatalf("applyXP(%d,%d,%d): xp=%d violates 0 <= xp < %d", tc.xp, tc.level, tc.delta, xp, XPForNextLevel(level))
		}
		if level < tc.level {
			t.Fatalf("applyXP(%d,%d,%d): level went down to %d", tc.xp, tc.level, tc.delta, level)
		}
		if len(gained) != level-tc.level {
			t.Fatalf("applyXP(%d,%d,%d): gained %v but level moved %d -> %d", tc.xp, tc.level, tc.delta, gained, tc.level, level)
		}
	}
}

func TestApplyXPExactThreshold(t *testing.T) {
	// 100 XP at level 1 is exactly one cascade step.
	xp, level, gained := applyXP(0, 1, 100)
	if xp != 0 || level != 2 {
		t.Fatalf("applyXP(0,1,100)=(%d,%d), want (0,2)", xp, level)
	}
	if len(gained) != 1 || gained[0] != 2 {
		t.Fatalf("gained=%v, want [2]", gained)
	}
}

func TestApplyXPMultiLevelCascade(t *testing.T) {
	// Enough to cross levels 1 and 2 in one call; each crossing is reported.
	delta := XPForNextLevel(1) + XPForNextLevel(2) + 10
	xp, level, gained := applyXP(0, 1, delta)
	if level != 3 {
		t.Fatalf("level=%d, want 3", level)
	}
	if xp != 10 {
		t.Fatalf("xp=%d, want 10", xp)
	}
	if len(gained) != 2 || gained[0] != 2 || gained[1] != 3 {
		t.Fatalf("gained=%v, want [2 3]", gained)
	}
}

func TestApplyXPNegativeDeltaIgnored(t *testing.T) {
	xp, level, gained := applyXP(40, 2, -50)
	if xp != 40 || level != 2 || len(gained) != 0 {
		t.Fatalf("applyXP(40,2,-50)=(%d,%d,%v), want unchanged", xp, level, gained)
	}
}
