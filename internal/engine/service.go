package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoProfile is returned by operations that need an onboarded user.
var ErrNoProfile = errors.New("no profile: run onboarding first")

// StateStore persists the aggregate as a single snapshot. Load returns
// (nil, nil) when no prior state exists; a corrupt blob is purged by the
// implementation and reported the same way.
type StateStore interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, s State) error
	Purge(ctx context.Context) error
}

// Generator produces the AI-backed content. Failures never mutate engine
// state; callers surface them and the last-known-good aggregate stays intact.
type Generator interface {
	Motivation(ctx context.Context, user Profile) (string, error)
	Routine(ctx context.Context, user Profile) ([]TaskSuggestion, error)
}

// Service owns the in-memory aggregate and ties the reducers, the
// achievement rule set, the generator and persistence together. All ledger
// mutations are serialized by a mutex: CompleteTask reads-then-writes the
// full aggregate, so concurrent callers must not interleave.
type Service struct {
	mu    sync.Mutex
	state State

	store StateStore
	gen   Generator
	now   func() time.Time
	newID func() string
}

func NewService(store StateStore, gen Generator) *Service {
	return &Service{
		state: NewState(),
		store: store,
		gen:   gen,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Open loads the persisted aggregate (or starts empty) and applies the day
// rollover before any completion flag can be read.
func (s *Service) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if loaded != nil {
		loaded.Normalize()
		s.state = *loaded
	} else {
		s.state = NewState()
	}

	next, changed := Rollover(s.state, s.now())
	if changed && loaded != nil {
		s.state = next
		if err := s.store.Save(ctx, s.state); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}
	return nil
}

// State returns a copy of the current aggregate for rendering.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Onboarded reports whether a profile exists.
func (s *Service) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User != nil
}

// SetUser starts a fresh aggregate for the given profile.
func (s *Service) SetUser(ctx context.Context, user Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = SetUser(s.state, user, s.now())
	return s.persist(ctx)
}

// CompleteTask applies one completion event. A nil result with a nil error
// means the event was a no-op (unknown id or already completed today).
func (s *Service) CompleteTask(ctx context.Context, taskID string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Rollover first so a stale completed flag from yesterday cannot block
	// today's completion.
	if next, changed := Rollover(s.state, s.now()); changed {
		s.state = next
	}

	next, res := CompleteTask(s.state, taskID, s.now())
	if res == nil {
		return nil, nil
	}
	s.state = next
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// GenerateRoutineResult reports what a routine regeneration produced.
type GenerateRoutineResult struct {
	Tasks    []RoutineTask
	Unlocked []Achievement
	Notices  []Notice
}

// GenerateRoutine asks the generator for a new routine and replaces the
// current one. A generator failure leaves the previous routine in place.
func (s *Service) GenerateRoutine(ctx context.Context) (*GenerateRoutineResult, error) {
	s.mu.Lock()
	user := s.state.User
	s.mu.Unlock()
	if user == nil {
		return nil, ErrNoProfile
	}

	// The generator call runs outside the lock: it can be slow and must not
	// block ledger mutations.
	suggestions, err := s.gen.Routine(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("generate routine: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := AdoptRoutine(s.state, suggestions, s.newID)
	next, unlocked, notices := EvaluateAchievements(next, s.now())
	s.state = next
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &GenerateRoutineResult{
		Tasks:    append([]RoutineTask(nil), s.state.Routine...),
		Unlocked: unlocked,
		Notices:  notices,
	}, nil
}

// Motivation returns today's motivational message, fetching it at most once
// per calendar day. A generator failure leaves the cached state untouched.
func (s *Service) Motivation(ctx context.Context) (string, error) {
	s.mu.Lock()
	user := s.state.User
	today := Day(s.now())
	if user == nil {
		s.mu.Unlock()
		return "", ErrNoProfile
	}
	if s.state.LastMotivationDate == today && s.state.DailyMotivation != "" {
		msg := s.state.DailyMotivation
		s.mu.Unlock()
		return msg, nil
	}
	s.mu.Unlock()

	msg, err := s.gen.Motivation(ctx, *user)
	if err != nil {
		return "", fmt.Errorf("generate motivation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	next.DailyMotivation = msg
	next.LastMotivationDate = today
	s.state = next
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return msg, nil
}

// Reset clears everything, including durable storage, returning to the
// pre-onboarding state.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Purge(ctx); err != nil {
		return fmt.Errorf("purge state: %w", err)
	}
	s.state = NewState()
	return nil
}

// persist writes the full snapshot. It runs under the mutex so a reload can
// never observe a state older than what the last mutation produced.
func (s *Service) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
