package engine

import "time"

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Snapshot is the read-only view predicates evaluate against. Now is the
// evaluation instant: a handful of achievements (time-of-day, weekend) are
// keyed off the wall clock at call time, so the clock travels with the
// snapshot instead of being read ambiently.
type Snapshot struct {
	Progress Progress
	Log      []LogEntry
	Routine  []RoutineTask
	Now      time.Time
}

// Achievement is one catalog entry. Unlocked must be a pure function of the
// snapshot: no side effects, same answer for the same inputs.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	XP          int
	Unlocked    func(s Snapshot) bool
}

// Catalog returns the fixed, ordered achievement catalog. Order matters only
// for notification determinism; each predicate is independent of the others.
func Catalog() []Achievement {
	return []Achievement{
		// Task-count milestones.
		countAchievement("first_step", "First Step", "Complete your first task", TierBronze, 20, 1),
		countAchievement("five_tasks", "Five Tasks", "Complete 5 tasks", TierBronze, 50, 5),
		countAchievement("ten_tasks", "Ten Tasks", "Complete 10 tasks", TierSilver, 100, 10),
		countAchievement("unstoppable", "Unstoppable", "Complete 25 tasks", TierSilver, 150, 25),
		countAchievement("goal_getter", "Goal Getter", "Complete 50 tasks", TierGold, 200, 50),
		countAchievement("centurion", "Centurion", "Complete 100 tasks", TierGold, 500, 100),

		// Level milestones.
		levelAchievement("level_5", "Gaining Momentum", "Reach level 5", TierBronze, 100, 5),
		levelAchievement("level_10", "Professional", "Reach level 10", TierSilver, 200, 10),
		levelAchievement("level_15", "Expert", "Reach level 15", TierGold, 300, 15),
		levelAchievement("level_20", "Legend", "Reach level 20", TierPlatinum, 500, 20),

		// Streaks.
		streakAchievement("hot_streak_3", "Hot Streak", "Complete a task every day for 3 days in a row", TierSilver, 75, 3),
		streakAchievement("week_streak", "Week Warrior", "Complete a task every day for 7 days in a row", TierGold, 200, 7),

		// Time of day. Evaluated against the wall clock at call time combined
		// with "was the most recent log entry dated today".
		{
			ID: "early_bird", Name: "Early Bird", Description: "Complete a task before 8 AM",
			Tier: TierBronze, XP: 25,
			Unlocked: func(s Snapshot) bool {
				return lastEntryIsToday(s) && s.Now.Hour() < 8
			},
		},
		{
			ID: "lunch_break_hero", Name: "Lunch Break Hero", Description: "Complete a task between 12 PM and 2 PM",
			Tier: TierBronze, XP: 25,
			Unlocked: func(s Snapshot) bool {
				return lastEntryIsToday(s) && s.Now.Hour() >= 12 && s.Now.Hour() < 14
			},
		},
		{
			ID: "night_owl", Name: "Night Owl", Description: "Complete a task after 10 PM",
			Tier: TierBronze, XP: 25,
			Unlocked: func(s Snapshot) bool {
				return lastEntryIsToday(s) && s.Now.Hour() >= 22
			},
		},

		// Per-category milestones.
		categoryAchievement("work_novice", "Hard Worker", "Complete 5 work tasks", TierBronze, 30, CategoryWork, 5),
		categoryAchievement("work_pro", "Work Pro", "Complete 15 work tasks", TierSilver, 150, CategoryWork, 15),
		categoryAchievement("learning_adept", "Student", "Complete 5 learning tasks", TierBronze, 30, CategoryLearning, 5),
		categoryAchievement("learning_master", "Avid Scholar", "Complete 15 learning tasks", TierSilver, 150, CategoryLearning, 15),
		categoryAchievement("sport_enthusiast", "Active Athlete", "Complete 5 sport tasks", TierBronze, 30, CategorySport, 5),
		categoryAchievement("sport_champion", "Sport Champion", "Complete 15 sport tasks", TierSilver, 150, CategorySport, 15),
		categoryAchievement("personal_growth", "Personal Growth", "Complete 5 personal tasks", TierBronze, 30, CategoryPersonal, 5),
		categoryAchievement("self_improver", "Self Improver", "Complete 15 personal tasks", TierSilver, 150, CategoryPersonal, 15),
		categoryAchievement("leisure_lover", "Time Out", "Complete 5 leisure tasks", TierBronze, 30, CategoryLeisure, 5),
		categoryAchievement("relaxation_expert", "Relaxation Expert", "Complete 15 leisure tasks", TierSilver, 150, CategoryLeisure, 15),

		// Variety.
		diversityAchievement("jack_of_all_trades", "Jack of All Trades", "Complete at least one task in 3 different categories", TierSilver, 50, 3),
		diversityAchievement("master_of_all", "Master of All", "Complete at least one task in all five categories", TierGold, 150, 5),
		{
			ID: "perfect_day", Name: "Perfect Day", Description: "Complete every task in your routine in one day",
			Tier: TierSilver, XP: 100,
			Unlocked: func(s Snapshot) bool {
				if len(s.Routine) == 0 {
					return false
				}
				today := Day(s.Now)
				done := map[string]bool{}
				for _, e := range s.Log {
					if e.Date == today {
						done[e.TaskID] = true
					}
				}
				for _, t := range s.Routine {
					if !done[t.ID] {
						return false
					}
				}
				return true
			},
		},
		{
			ID: "first_routine", Name: "Fresh Start", Description: "Generate your first routine",
			Tier: TierBronze, XP: 10,
			Unlocked: func(s Snapshot) bool {
				return len(s.Routine) > 0
			},
		},
		{
			ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Complete a task on a Saturday or Sunday",
			Tier: TierBronze, XP: 25,
			Unlocked: func(s Snapshot) bool {
				if len(s.Log) == 0 {
					return false
				}
				d, ok := parseDay(s.Log[len(s.Log)-1].Date)
				if !ok {
					return false
				}
				return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
			},
		},
	}
}

// FindAchievement looks up a catalog entry by id.
func FindAchievement(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

func lastEntryIsToday(s Snapshot) bool {
	if len(s.Log) == 0 {
		return false
	}
	return s.Log[len(s.Log)-1].Date == Day(s.Now)
}

func countAchievement(id, name, desc string, tier Tier, xp, n int) Achievement {
	return Achievement{
		ID: id, Name: name, Description: desc, Tier: tier, XP: xp,
		Unlocked: func(s Snapshot) bool {
			return s.Progress.TotalTasksCompleted >= n
		},
	}
}

func levelAchievement(id, name, desc string, tier Tier, xp, level int) Achievement {
	return Achievement{
		ID: id, Name: name, Description: desc, Tier: tier, XP: xp,
		Unlocked: func(s Snapshot) bool {
			return s.Progress.Level >= level
		},
	}
}

func streakAchievement(id, name, desc string, tier Tier, xp, days int) Achievement {
	return Achievement{
		ID: id, Name: name, Description: desc, Tier: tier, XP: xp,
		Unlocked: func(s Snapshot) bool {
			return StreakLength(s.Log, s.Now) >= days
		},
	}
}

func categoryAchievement(id, name, desc string, tier Tier, xp int, cat Category, n int) Achievement {
	return Achievement{
		ID: id, Name: name, Description: desc, Tier: tier, XP: xp,
		Unlocked: func(s Snapshot) bool {
			return s.Progress.CategoryCounts[cat] >= n
		},
	}
}

func diversityAchievement(id, name, desc string, tier Tier, xp, n int) Achievement {
	return Achievement{
		ID: id, Name: name, Description: desc, Tier: tier, XP: xp,
		Unlocked: func(s Snapshot) bool {
			distinct := 0
			for _, c := range s.Progress.CategoryCounts {
				if c > 0 {
					distinct++
				}
			}
			return distinct >= n
		},
	}
}
