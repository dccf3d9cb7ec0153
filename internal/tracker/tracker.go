// Package tracker coordinates mutations and stats recomputation across the
// store, the analytics engine, and the insight engine.
package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fernhill-labs/dayline/internal/analytics"
	"github.com/fernhill-labs/dayline/internal/insight"
	"github.com/fernhill-labs/dayline/internal/models"
	"github.com/fernhill-labs/dayline/internal/store"
)

// Neutral defaults applied to contextual fields the user did not record.
const (
	defaultQuantity     = 1
	defaultSatisfaction = 4
	defaultLocation     = "home"
)

// Details carries the optional context a user may attach when completing a
// habit. Zero values mean "not recorded" and receive neutral defaults where
// the original behavior defines one.
type Details struct {
	Quantity      int
	MoodBefore    *int
	MoodAfter     *int
	EnergyBefore  *int
	EnergyAfter   *int
	Satisfaction  *int
	Interruptions int
	Location      string
	Weather       string
	Note          string
}

// ToggleResult reports the outcome of a completion toggle.
type ToggleResult struct {
	// Added is true when the toggle created a completion, false when it
	// removed one.
	Added bool

	// Stats is the habit's recomputed stats after the mutation, with
	// insights and suggestions attached.
	Stats analytics.HabitStats
}

// Tracker is the mutation and recomputation front for habits.
type Tracker struct {
	db     *store.DB
	cache  *analytics.Cache
	engine *insight.Engine

	// now is injectable for tests.
	now func() time.Time
}

// New creates a tracker over the given store.
func New(db *store.DB, thresholds insight.Thresholds) *Tracker {
	return &Tracker{
		db:     db,
		cache:  analytics.NewCache(),
		engine: insight.NewEngine(thresholds),
		now:    time.Now,
	}
}

// Toggle flips the completion state for (habit, day). When turning a day on,
// absent contextual fields default to neutral values; when turning it off,
// the completion row is removed. Either way the habit's stored streak
// counters are reconciled to the freshly recomputed stats.
//
// The store's upsert/delete primitives are idempotent on (habit, day), so a
// rapid double-toggle settles on a consistent state instead of duplicating
// rows.
func (t *Tracker) Toggle(habitID, day string, details Details) (*ToggleResult, error) {
	habit, err := t.db.GetHabit(habitID)
	if err != nil {
		return nil, fmt.Errorf("loading habit: %w", err)
	}

	existing, err := t.db.GetCompletion(habitID, day)
	if err != nil {
		return nil, fmt.Errorf("checking completion: %w", err)
	}

	result := &ToggleResult{}
	if existing != nil {
		if _, err := t.db.DeleteCompletion(habitID, day); err != nil {
			return nil, fmt.Errorf("removing completion: %w", err)
		}
	} else {
		completion := t.buildCompletion(habitID, day, details)
		if err := t.db.UpsertCompletion(completion); err != nil {
			return nil, fmt.Errorf("recording completion: %w", err)
		}
		result.Added = true
	}

	stats, err := t.recompute(*habit)
	if err != nil {
		return nil, err
	}
	result.Stats = stats
	return result, nil
}

// buildCompletion fills in neutral defaults for unrecorded context.
func (t *Tracker) buildCompletion(habitID, day string, d Details) *models.Completion {
	if d.Quantity <= 0 {
		d.Quantity = defaultQuantity
	}
	if d.Satisfaction == nil {
		neutral := defaultSatisfaction
		d.Satisfaction = &neutral
	}
	if d.Location == "" {
		d.Location = defaultLocation
	}

	return &models.Completion{
		ID:            uuid.NewString(),
		HabitID:       habitID,
		Day:           day,
		CompletedAt:   t.now(),
		Quantity:      d.Quantity,
		MoodBefore:    d.MoodBefore,
		MoodAfter:     d.MoodAfter,
		EnergyBefore:  d.EnergyBefore,
		EnergyAfter:   d.EnergyAfter,
		Satisfaction:  d.Satisfaction,
		Interruptions: d.Interruptions,
		Location:      d.Location,
		Weather:       d.Weather,
		Note:          d.Note,
	}
}

// recompute rebuilds stats for one habit and reconciles the stored counters.
// The recomputed values govern: best streak only ever grows, and current can
// never exceed it.
func (t *Tracker) recompute(habit models.Habit) (analytics.HabitStats, error) {
	completions, err := t.db.ListCompletions(habit.ID)
	if err != nil {
		return analytics.HabitStats{}, fmt.Errorf("listing completions: %w", err)
	}

	t.cache.Invalidate(habit.ID)
	stats := t.cache.Build(habit, completions, t.now())

	best := stats.Streaks.Longest
	if habit.BestStreak > best {
		best = habit.BestStreak
	}
	if err := t.db.UpdateHabitCounters(habit.ID, stats.Streaks.Current, best, stats.TotalCompletions); err != nil {
		return analytics.HabitStats{}, fmt.Errorf("reconciling counters: %w", err)
	}

	return t.engine.Annotate(habit, stats, completions), nil
}

// StatsFor returns annotated stats for a single habit.
func (t *Tracker) StatsFor(habitID string) (analytics.HabitStats, error) {
	habit, err := t.db.GetHabit(habitID)
	if err != nil {
		return analytics.HabitStats{}, fmt.Errorf("loading habit: %w", err)
	}
	completions, err := t.db.ListCompletions(habitID)
	if err != nil {
		return analytics.HabitStats{}, fmt.Errorf("listing completions: %w", err)
	}

	stats := t.cache.Build(*habit, completions, t.now())
	return t.engine.Annotate(*habit, stats, completions), nil
}

// AllStats computes annotated stats for every non-archived habit, fanning
// the per-habit pipeline out across goroutines. The result maps habit ID to
// stats.
func (t *Tracker) AllStats(ctx context.Context) (map[string]analytics.HabitStats, error) {
	habits, err := t.db.ListHabits(false)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}

	var mu sync.Mutex
	all := make(map[string]analytics.HabitStats, len(habits))

	g, ctx := errgroup.WithContext(ctx)
	for _, habit := range habits {
		habit := habit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := t.StatsFor(habit.ID)
			if err != nil {
				return fmt.Errorf("habit %q: %w", habit.Name, err)
			}
			mu.Lock()
			all[habit.ID] = stats
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}
