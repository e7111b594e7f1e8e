package engine

import (
	"fmt"
	"time"
)

// Notice is a user-facing notification produced by a mutation. The CLI and
// TUI render these; the engine only decides their order and content.
type Notice struct {
	Title  string
	Detail string
}

// CompleteResult describes everything a single completion caused.
type CompleteResult struct {
	TaskID       string
	Task         string
	XPAwarded    int
	LevelBefore  int
	LevelAfter   int
	LevelsGained []int
	Unlocked     []Achievement
	Notices      []Notice
}

// CompleteTask is the core reducer: it takes the old aggregate and returns a
// new one with the completion applied, or the old one untouched when the
// event is a no-op (unknown task id, or the task is already completed for
// today — the double-submit idempotence guarantee).
func CompleteTask(s State, taskID string, now time.Time) (State, *CompleteResult) {
	today := Day(now)

	idx := -1
	for i := range s.Routine {
		if s.Routine[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, nil
	}
	if s.Routine[idx].Completed && s.Routine[idx].CompletedDate == today {
		return s, nil
	}

	next := s.Clone()
	next.Routine[idx].Completed = true
	next.Routine[idx].CompletedDate = today
	task := next.Routine[idx]

	next.CompletedTasksLog = append(next.CompletedTasksLog, LogEntry{
		TaskID:   taskID,
		Date:     today,
		Category: task.Category,
	})
	next.Progress.TotalTasksCompleted++
	next.Progress.CategoryCounts[task.Category]++

	res := &CompleteResult{
		TaskID:      taskID,
		Task:        task.Task,
		XPAwarded:   XPPerTask,
		LevelBefore: next.Progress.Level,
	}

	var gained []int
	next.Progress.XP, next.Progress.Level, gained = applyXP(next.Progress.XP, next.Progress.Level, XPPerTask)
	res.LevelsGained = append(res.LevelsGained, gained...)

	// Level-up and flat XP notices are mutually exclusive per completion.
	if len(gained) > 0 {
		for _, lvl := range gained {
			res.Notices = append(res.Notices, levelUpNotice(lvl))
		}
	} else {
		res.Notices = append(res.Notices, Notice{
			Title:  fmt.Sprintf("+%d XP!", XPPerTask),
			Detail: fmt.Sprintf("%q completed. Nice work!", task.Task),
		})
	}

	var unlocked []Achievement
	var notices []Notice
	next, unlocked, notices = EvaluateAchievements(next, now)
	res.Unlocked = unlocked
	res.Notices = append(res.Notices, notices...)

	res.LevelAfter = next.Progress.Level
	return next, res
}

// EvaluateAchievements unlocks every catalog achievement whose predicate
// holds against the current snapshot, applying each XP reward through the
// level cascade. Bonus XP can raise the level and thereby satisfy further
// predicates, so evaluation repeats until a pass unlocks nothing. Within a
// pass, predicates all see the same snapshot, keeping the final set
// independent of catalog order; notices follow catalog order.
func EvaluateAchievements(s State, now time.Time) (State, []Achievement, []Notice) {
	var unlocked []Achievement
	var notices []Notice

	for {
		snap := Snapshot{
			Progress: s.Progress,
			Log:      s.CompletedTasksLog,
			Routine:  s.Routine,
			Now:      now,
		}

		var pass []Achievement
		for _, a := range Catalog() {
			if s.HasUnlocked(a.ID) {
				continue
			}
			if a.Unlocked(snap) {
				pass = append(pass, a)
			}
		}
		if len(pass) == 0 {
			return s, unlocked, notices
		}

		next := s.Clone()
		for _, a := range pass {
			next.UnlockedAchievements = append(next.UnlockedAchievements, a.ID)
			notices = append(notices, Notice{
				Title:  "🏆 Achievement unlocked!",
				Detail: fmt.Sprintf("%s (+%d XP)", a.Name, a.XP),
			})

			var gained []int
			next.Progress.XP, next.Progress.Level, gained = applyXP(next.Progress.XP, next.Progress.Level, a.XP)
			for _, lvl := range gained {
				notices = append(notices, levelUpNotice(lvl))
			}
		}
		unlocked = append(unlocked, pass...)
		s = next
	}
}

func levelUpNotice(level int) Notice {
	return Notice{
		Title:  fmt.Sprintf("🎉 Reached level %d!", level),
		Detail: "Keep it up!",
	}
}
