package analytics

import (
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/fernhill-labs/dayline/internal/models"
)

// Cache memoizes per-habit stats keyed by a content hash of the habit's
// analysis inputs. The dashboard path recomputes stats for every habit on
// every render; for unchanged habits this turns that into a map lookup.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	key   uint64
	stats HabitStats
}

// cacheInput is everything Build's output depends on. Today is included as
// a day string because current streak, trailing windows, and completion rate
// all shift at midnight.
type cacheInput struct {
	Habit       models.Habit
	Completions []models.Completion
	Today       string
}

// NewCache returns an empty stats cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Build returns memoized stats for the habit, recomputing only when the
// habit row, its completion list, or the calendar day have changed. If the
// inputs cannot be hashed it falls back to an uncached recompute.
func (c *Cache) Build(habit models.Habit, completions []models.Completion, today time.Time) HabitStats {
	input := cacheInput{
		Habit:       habit,
		Completions: completions,
		Today:       today.Format(models.DayFormat),
	}
	key, err := hashstructure.Hash(input, hashstructure.FormatV2, nil)
	if err != nil {
		return Build(habit, completions, today)
	}

	c.mu.Lock()
	entry, ok := c.entries[habit.ID]
	c.mu.Unlock()
	if ok && entry.key == key {
		return entry.stats
	}

	stats := Build(habit, completions, today)

	c.mu.Lock()
	c.entries[habit.ID] = cacheEntry{key: key, stats: stats}
	c.mu.Unlock()
	return stats
}

// Invalidate drops the cached stats for a habit.
func (c *Cache) Invalidate(habitID string) {
	c.mu.Lock()
	delete(c.entries, habitID)
	c.mu.Unlock()
}
