package engine

import "time"

// Rollover applies the day-boundary policy: when the stored reset date is not
// today, clear every routine task's completion flag and stamp today as the
// reset date. The completed-task log is never touched. Running it twice on
// the same day is a no-op because the stored date already matches.
func Rollover(s State, now time.Time) (State, bool) {
	today := Day(now)
	if s.LastRoutineResetDate == today {
		return s, false
	}

	next := s.Clone()
	for i := range next.Routine {
		next.Routine[i].Completed = false
		next.Routine[i].CompletedDate = ""
	}
	next.LastRoutineResetDate = today
	return next, true
}

// SetUser replaces the whole aggregate with a fresh one holding only the new
// profile and today's reset date. Progress, log, routine and unlocked
// achievements are all cleared.
func SetUser(s State, user Profile, now time.Time) State {
	next := NewState()
	next.User = &user
	next.LastRoutineResetDate = Day(now)
	return next
}

// AdoptRoutine replaces the active routine with a freshly generated batch.
// Each suggestion gets a new id and starts uncompleted; generator-supplied
// categories are coerced into the fixed enumeration.
func AdoptRoutine(s State, suggestions []TaskSuggestion, newID func() string) State {
	next := s.Clone()
	routine := make([]RoutineTask, 0, len(suggestions))
	for _, sug := range suggestions {
		routine = append(routine, RoutineTask{
			ID:            newID(),
			Task:          sug.Task,
			Description:   sug.Description,
			Category:      ParseCategory(sug.Category),
			SuggestedTime: sug.SuggestedTime,
		})
	}
	next.Routine = routine
	return next
}
