package models

import "time"

// Todo is a one-off task with an optional due day.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  int       `json:"priority"` // 1 = highest
	Due       string    `json:"due,omitempty"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// Overdue reports whether the todo is open and past its due day.
func (t Todo) Overdue(now time.Time) bool {
	if t.Done || t.Due == "" {
		return false
	}
	due, err := time.Parse(DayFormat, t.Due)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}

// MoodEntry is a single 1-5 mood rating with an optional note.
type MoodEntry struct {
	ID       string    `json:"id"`
	LoggedAt time.Time `json:"logged_at"`
	Rating   int       `json:"rating"` // 1-5
	Note     string    `json:"note,omitempty"`
}

// Note is a free-form text note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Cadence is a subscription billing interval.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

// Valid reports whether c is a known billing cadence.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceMonthly, CadenceYearly:
		return true
	}
	return false
}

// Subscription is a recurring charge.
type Subscription struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Cadence   Cadence   `json:"cadence"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyCost normalizes the subscription amount to a per-month figure.
func (s Subscription) MonthlyCost() float64 {
	switch s.Cadence {
	case CadenceWeekly:
		return s.Amount * 52 / 12
	case CadenceYearly:
		return s.Amount / 12
	default:
		return s.Amount
	}
}

// Transaction is a single spending record.
type Transaction struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"`
	Merchant   string    `json:"merchant,omitempty"`
	Note       string    `json:"note,omitempty"`
}

// Meal is a logged meal with basic nutrition numbers.
type Meal struct {
	ID       string    `json:"id"`
	Day      string    `json:"day"` // YYYY-MM-DD
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"` // grams
	LoggedAt time.Time `json:"logged_at"`
}
