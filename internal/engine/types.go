package engine

import "strings"

type Category string

const (
	CategoryLearning Category = "learning"
	CategorySport    Category = "sport"
	CategoryWork     Category = "work"
	CategoryLeisure  Category = "leisure"
	CategoryPersonal Category = "personal"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryLearning, CategorySport, CategoryWork, CategoryLeisure, CategoryPersonal:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user or generator input is missing/invalid.
const DefaultCategory Category = CategoryPersonal

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryLearning, CategorySport, CategoryWork, CategoryLeisure, CategoryPersonal}
}

// ParseCategory parses free-form input (including a few aliases the routine
// generator tends to emit) to a Category. Unrecognized input falls back to
// DefaultCategory rather than failing: a routine with a slightly off category
// is still a usable routine.
func ParseCategory(input string) Category {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "learning", "study", "education":
		return CategoryLearning
	case "sport", "sports", "fitness", "exercise":
		return CategorySport
	case "work", "career":
		return CategoryWork
	case "leisure", "fun", "relax", "relaxation":
		return CategoryLeisure
	case "personal", "self", "wellness":
		return CategoryPersonal
	default:
		return DefaultCategory
	}
}

// Profile is the onboarding identity. It is immutable once set; a new
// onboarding replaces the whole aggregate.
type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Goal string `json:"goal"`
}

// TaskSuggestion is one routine item as produced by the generator, before it
// is assigned an id and adopted into the active routine.
type TaskSuggestion struct {
	Task          string `json:"task"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	SuggestedTime string `json:"suggestedTime"`
}

// RoutineTask is one task of the active daily routine. The completion flag and
// date are ephemeral (cleared by the day rollover); history lives in LogEntry.
type RoutineTask struct {
	ID            string   `json:"id"`
	Task          string   `json:"task"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	SuggestedTime string   `json:"suggestedTime"`
	Completed     bool     `json:"completed"`
	CompletedDate string   `json:"completedDate,omitempty"`
}

// LogEntry is one completed-task record. The log is append-only; it is the
// durable basis for streaks and activity charts.
type LogEntry struct {
	TaskID   string   `json:"taskId"`
	Date     string   `json:"date"` // local calendar day, YYYY-MM-DD
	Category Category `json:"category"`
}

// Progress is the mutable XP aggregate. XP always satisfies
// 0 <= XP < XPForNextLevel(Level); mutations go through the level cascade.
type Progress struct {
	XP                  int              `json:"xp"`
	Level               int              `json:"level"`
	TotalTasksCompleted int              `json:"totalTasksCompleted"`
	CategoryCounts      map[Category]int `json:"categoryCounts"`
}

// SchemaVersion is stored in every persisted snapshot so future layouts can
// migrate older blobs instead of discarding them.
const SchemaVersion = 1

// State is the whole persisted aggregate. It is treated as a value: reducers
// take a State and return a new one rather than mutating shared memory.
type State struct {
	SchemaVersion        int           `json:"schemaVersion"`
	User                 *Profile      `json:"user"`
	Routine              []RoutineTask `json:"routine"`
	Progress             Progress      `json:"progress"`
	UnlockedAchievements []string      `json:"unlockedAchievements"`
	LastMotivationDate   string        `json:"lastMotivationDate,omitempty"`
	DailyMotivation      string        `json:"dailyMotivation,omitempty"`
	CompletedTasksLog    []LogEntry    `json:"completedTasksLog"`
	LastRoutineResetDate string        `json:"lastRoutineResetDate,omitempty"`
}

// NewState returns the empty pre-onboarding aggregate.
func NewState() State {
	return State{
		SchemaVersion: SchemaVersion,
		Routine:       []RoutineTask{},
		Progress: Progress{
			Level:          1,
			CategoryCounts: map[Category]int{},
		},
		UnlockedAchievements: []string{},
		CompletedTasksLog:    []LogEntry{},
	}
}

// Normalize fills in zero values a tolerant load may have left behind
// (missing fields in an older or hand-edited snapshot default to empty).
func (s *State) Normalize() {
	if s.SchemaVersion == 0 {
		s.SchemaVersion = SchemaVersion
	}
	if s.Routine == nil {
		s.Routine = []RoutineTask{}
	}
	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = []string{}
	}
	if s.CompletedTasksLog == nil {
		s.CompletedTasksLog = []LogEntry{}
	}
	if s.Progress.Level < 1 {
		s.Progress.Level = 1
	}
	if s.Progress.CategoryCounts == nil {
		s.Progress.CategoryCounts = map[Category]int{}
	}
}

// Clone returns a deep copy so reducers can build a new State without
// aliasing the slices and maps of the old one.
func (s State) Clone() State {
	out := s
	out.Routine = append([]RoutineTask(nil), s.Routine...)
	out.UnlockedAchievements = append([]string(nil), s.UnlockedAchievements...)
	out.CompletedTasksLog = append([]LogEntry(nil), s.CompletedTasksLog...)
	out.Progress.CategoryCounts = make(map[Category]int, len(s.Progress.CategoryCounts))
	for k, v := range s.Progress.CategoryCounts {
		out.Progress.CategoryCounts[k] = v
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// HasUnlocked reports whether the achievement id is already in the set.
func (s State) HasUnlocked(id string) bool {
	for _, got := range s.UnlockedAchievements {
		if got == id {
			return true
		}
	}
	return false
}
