package engine

import (
	"reflect"
	"testing"
)

func TestRolloverClearsFlagsAndKeepsHistory(t *testing.T) {
	day1 := fixedNow()
	day2 := day1.AddDate(0, 0, 1)

	s := routineState(2, CategoryWork, day1)
	s, res := CompleteTask(s, "task-0", day1)
	if res == nil {
		t.Fatalf("completion should apply")
	}
	logBefore := len(s.CompletedTasksLog)

	next, changed := Rollover(s, day2)
	if !changed {
		t.Fatalf("expected rollover to apply on a new day")
	}
	for i, task := range next.Routine {
		if task.Completed || task.CompletedDate != "" {
			t.Fatalf("task %d still flagged after rollover: %+v", i, task)
		}
	}
	if len(next.CompletedTasksLog) != logBefore {
		t.Fatalf("rollover changed log length %d -> %d", logBefore, len(next.CompletedTasksLog))
	}
	if next.LastRoutineResetDate != Day(day2) {
		t.Fatalf("reset date=%q, want %q", next.LastRoutineResetDate, Day(day2))
	}
}

func TestRolloverIdempotentSameDay(t *testing.T) {
	day := fixedNow()
	s := routineState(1, CategoryWork, day)

	next, changed := Rollover(s, day)
	if changed {
		t.Fatalf("rollover should be a no-op when the stored date matches")
	}
	if !reflect.DeepEqual(s, next) {
		t.Fatalf("no-op rollover changed state")
	}
}

func TestSetUserReplacesAggregate(t *testing.T) {
	now := fixedNow()
	s := routineState(3, CategoryWork, now)
	s, _ = CompleteTask(s, "task-0", now)

	fresh := SetUser(s, Profile{Name: "Nur", Age: 25, Goal: "learn Go"}, now)
	if fresh.User == nil || fresh.User.Name != "Nur" {
		t.Fatalf("profile not set: %+v", fresh.User)
	}
	if len(fresh.Routine) != 0 || len(fresh.CompletedTasksLog) != 0 || len(fresh.UnlockedAchievements) != 0 {
		t.Fatalf("old data survived setUser: %+v", fresh)
	}
	if fresh.Progress.Level != 1 || fresh.Progress.XP != 0 || fresh.Progress.TotalTasksCompleted != 0 {
		t.Fatalf("progress not reset: %+v", fresh.Progress)
	}
	if fresh.LastRoutineResetDate != Day(now) {
		t.Fatalf("reset date=%q, want today", fresh.LastRoutineResetDate)
	}
}

func TestAdoptRoutineAssignsIDsAndCoercesCategories(t *testing.T) {
	now := fixedNow()
	s := routineState(1, CategoryWork, now)

	n := 0
	newID := func() string {
		n++
		return map[int]string{1: "id-1", 2: "id-2"}[n]
	}

	next := AdoptRoutine(s, []TaskSuggestion{
		{Task: "Morning run", Description: "30 minutes", Category: "fitness", SuggestedTime: "7:00 AM"},
		{Task: "Review PRs", Category: "WORK", SuggestedTime: "10:00 AM"},
	}, newID)

	if len(next.Routine) != 2 {
		t.Fatalf("routine length=%d, want 2 (old routine replaced)", len(next.Routine))
	}
	if next.Routine[0].ID != "id-1" || next.Routine[1].ID != "id-2" {
		t.Fatalf("ids not assigned: %+v", next.Routine)
	}
	if next.Routine[0].Category != CategorySport {
		t.Fatalf("category %q not coerced to sport", next.Routine[0].Category)
	}
	if next.Routine[1].Category != CategoryWork {
		t.Fatalf("category %q not coerced to work", next.Routine[1].Category)
	}
	if next.Routine[0].Completed || next.Routine[0].CompletedDate != "" {
		t.Fatalf("new routine tasks must start uncompleted")
	}
}
