package engine

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	// A Wednesday, mid-morning: avoids the time-of-day and weekend unlocks.
	return time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local)
}

func TestCatalogIDsUniqueAndTiersValid(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog() {
		if a.ID == "" || a.Name == "" {
			t.Fatalf("achievement with empty id/name: %+v", a)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.XP <= 0 {
			t.Fatalf("achievement %q has non-positive xp %d", a.ID, a.XP)
		}
		switch a.Tier {
		case TierBronze, TierSilver, TierGold, TierPlatinum:
		default:
			t.Fatalf("achievement %q has unknown tier %q", a.ID, a.Tier)
		}
		if a.Unlocked == nil {
			t.Fatalf("achievement %q has no predicate", a.ID)
		}
	}
}

func TestStreakLength(t *testing.T) {
	now := time.Date(2024, 1, 3, 18, 0, 0, 0, time.Local)

	consecutive := []LogEntry{
		{TaskID: "a", Date: "2024-01-01", Category: CategoryWork},
		{TaskID: "b", Date: "2024-01-02", Category: CategorySport},
		{TaskID: "c", Date: "2024-01-02", Category: CategoryWork},
		{TaskID: "d", Date: "2024-01-03", Category: CategoryLearning},
	}
	if got := StreakLength(consecutive, now); got != 3 {
		t.Fatalf("StreakLength=%d, want 3", got)
	}

	gap := []LogEntry{
		{TaskID: "a", Date: "2024-01-01", Category: CategoryWork},
		{TaskID: "c", Date: "2024-01-03", Category: CategoryWork},
	}
	if got := StreakLength(gap, now); got != 1 {
		t.Fatalf("StreakLength with gap=%d, want 1", got)
	}

	stale := []LogEntry{
		{TaskID: "a", Date: "2023-12-25", Category: CategoryWork},
		{TaskID: "b", Date: "2023-12-26", Category: CategoryWork},
	}
	if got := StreakLength(stale, now); got != 0 {
		t.Fatalf("StreakLength with stale log=%d, want 0", got)
	}

	if got := StreakLength(nil, now); got != 0 {
		t.Fatalf("StreakLength(nil)=%d, want 0", got)
	}
}

func TestStreakPredicates(t *testing.T) {
	ach, ok := FindAchievement("hot_streak_3")
	if !ok {
		t.Fatalf("hot_streak_3 not in catalog")
	}
	now := time.Date(2024, 1, 3, 18, 0, 0, 0, time.Local)

	snap := Snapshot{
		Log: []LogEntry{
			{TaskID: "a", Date: "2024-01-01", Category: CategoryWork},
			{TaskID: "b", Date: "2024-01-02", Category: CategoryWork},
			{TaskID: "c", Date: "2024-01-03", Category: CategoryWork},
		},
		Now: now,
	}
	if !ach.Unlocked(snap) {
		t.Fatalf("expected 3-day streak to unlock hot_streak_3")
	}

	snap.Log = []LogEntry{
		{TaskID: "a", Date: "2024-01-01", Category: CategoryWork},
		{TaskID: "c", Date: "2024-01-03", Category: CategoryWork},
	}
	if ach.Unlocked(snap) {
		t.Fatalf("expected gap to block hot_streak_3")
	}
}

func TestTimeOfDayPredicateEvaluatesAtCallTime(t *testing.T) {
	ach, ok := FindAchievement("early_bird")
	if !ok {
		t.Fatalf("early_bird not in catalog")
	}

	log := []LogEntry{{TaskID: "a", Date: "2024-01-03", Category: CategoryWork}}

	early := Snapshot{Log: log, Now: time.Date(2024, 1, 3, 7, 30, 0, 0, time.Local)}
	if !ach.Unlocked(early) {
		t.Fatalf("expected early_bird before 8 AM with a task logged today")
	}

	// Same log, later clock: the predicate is keyed off the evaluation
	// instant, so it no longer holds.
	late := Snapshot{Log: log, Now: time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local)}
	if ach.Unlocked(late) {
		t.Fatalf("did not expect early_bird at 9 AM")
	}

	yesterday := Snapshot{Log: []LogEntry{{TaskID: "a", Date: "2024-01-02", Category: CategoryWork}}, Now: early.Now}
	if ach.Unlocked(yesterday) {
		t.Fatalf("did not expect early_bird when the last entry is not from today")
	}
}

func TestPerfectDayPredicate(t *testing.T) {
	ach, ok := FindAchievement("perfect_day")
	if !ok {
		t.Fatalf("perfect_day not in catalog")
	}
	now := fixedNow()

	routine := []RoutineTask{
		{ID: "t1", Task: "Read", Category: CategoryLearning},
		{ID: "t2", Task: "Run", Category: CategorySport},
	}

	snap := Snapshot{
		Routine: routine,
		Log: []LogEntry{
			{TaskID: "t1", Date: Day(now), Category: CategoryLearning},
		},
		Now: now,
	}
	if ach.Unlocked(snap) {
		t.Fatalf("did not expect perfect_day with one task missing")
	}

	snap.Log = append(snap.Log, LogEntry{TaskID: "t2", Date: Day(now), Category: CategorySport})
	if !ach.Unlocked(snap) {
		t.Fatalf("expected perfect_day with every routine task logged today")
	}

	snap.Routine = nil
	if ach.Unlocked(snap) {
		t.Fatalf("did not expect perfect_day with an empty routine")
	}
}

func TestDiversityPredicates(t *testing.T) {
	three, _ := FindAchievement("jack_of_all_trades")
	five, _ := FindAchievement("master_of_all")

	snap := Snapshot{
		Progress: Progress{CategoryCounts: map[Category]int{
			CategoryWork:     2,
			CategorySport:    1,
			CategoryLearning: 1,
		}},
		Now: fixedNow(),
	}
	if !three.Unlocked(snap) {
		t.Fatalf("expected 3 categories to unlock jack_of_all_trades")
	}
	if five.Unlocked(snap) {
		t.Fatalf("did not expect master_of_all with 3 categories")
	}

	snap.Progress.CategoryCounts[CategoryLeisure] = 1
	snap.Progress.CategoryCounts[CategoryPersonal] = 3
	if !five.Unlocked(snap) {
		t.Fatalf("expected all five categories to unlock master_of_all")
	}
}

func TestEvaluateAchievementsAppliesBonusCascade(t *testing.T) {
	s := NewState()
	s.LastRoutineResetDate = Day(fixedNow())
	// Work count just reached 5; pre-unlock everything except the
	// 5-work-task badge so the evaluation flips exactly one.
	s.Progress.TotalTasksCompleted = 5
	s.Progress.CategoryCounts[CategoryWork] = 5
	s.Progress.XP = 80
	s.Progress.Level = 1
	for _, a := range Catalog() {
		if a.ID != "work_novice" {
			s.UnlockedAchievements = append(s.UnlockedAchievements, a.ID)
		}
	}

	next, unlocked, notices := EvaluateAchievements(s, fixedNow())
	if len(unlocked) != 1 || unlocked[0].ID != "work_novice" {
		t.Fatalf("unlocked=%v, want [work_novice]", unlocked)
	}
	// 80 + 30 crosses the level 1 threshold of 100.
	if next.Progress.Level != 2 || next.Progress.XP != 10 {
		t.Fatalf("progress=(%d,%d), want level 2 with 10 xp", next.Progress.Level, next.Progress.XP)
	}
	if len(notices) != 2 {
		t.Fatalf("notices=%v, want unlock + level-up", notices)
	}
	if !next.HasUnlocked("work_novice") {
		t.Fatalf("work_novice missing from unlocked set")
	}

	// Re-running against the result unlocks nothing more.
	again, more, _ := EvaluateAchievements(next, fixedNow())
	if len(more) != 0 {
		t.Fatalf("second evaluation unlocked %v", more)
	}
	if len(again.UnlockedAchievements) != len(next.UnlockedAchievements) {
		t.Fatalf("unlocked set changed on re-evaluation")
	}
}

func TestEvaluateAchievementsBonusCanChainLevelUnlocks(t *testing.T) {
	s := NewState()
	// One completion away from first_step; its bonus pushes the level to 5,
	// which must unlock level_5 in a follow-up pass.
	s.Progress.TotalTasksCompleted = 1
	s.Progress.CategoryCounts[CategoryWork] = 1
	s.Progress.Level = 4
	s.Progress.XP = XPForNextLevel(4) - 1
	for _, a := range Catalog() {
		if a.ID != "first_step" && a.ID != "level_5" {
			s.UnlockedAchievements = append(s.UnlockedAchievements, a.ID)
		}
	}

	next, unlocked, _ := EvaluateAchievements(s, fixedNow())
	if len(unlocked) != 2 {
		t.Fatalf("unlocked=%v, want first_step then level_5", unlocked)
	}
	if unlocked[0].ID != "first_step" || unlocked[1].ID != "level_5" {
		t.Fatalf("unlock order=%v, want [first_step level_5]", unlocked)
	}
	if next.Progress.Level < 5 {
		t.Fatalf("level=%d, want >= 5", next.Progress.Level)
	}
}
