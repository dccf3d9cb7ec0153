package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fernhill-labs/dayline/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testHabit() *models.Habit {
	return &models.Habit{
		ID:            uuid.NewString(),
		Name:          "morning run",
		Category:      "fitness",
		Difficulty:    models.DifficultyMedium,
		TargetPerWeek: 3,
		CreatedAt:     time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestHabitRoundTrip(t *testing.T) {
	db := testDB(t)
	habit := testHabit()

	require.NoError(t, db.CreateHabit(habit))

	got, err := db.GetHabit(habit.ID)
	require.NoError(t, err)
	require.Equal(t, habit.Name, got.Name)
	require.Equal(t, models.DifficultyMedium, got.Difficulty)
	require.Equal(t, 3, got.TargetPerWeek)
	require.True(t, got.CreatedAt.Equal(habit.CreatedAt))
}

func TestFindHabitByName_SkipsArchived(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))

	got, err := db.FindHabitByName("morning run")
	require.NoError(t, err)
	require.Equal(t, habit.ID, got.ID)

	require.NoError(t, db.SetHabitArchived(habit.ID, true))
	_, err = db.FindHabitByName("morning run")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListHabits_ArchivedFilter(t *testing.T) {
	db := testDB(t)
	active := testHabit()
	archived := testHabit()
	archived.ID = uuid.NewString()
	archived.Name = "journal"
	archived.Archived = true

	require.NoError(t, db.CreateHabit(active))
	require.NoError(t, db.CreateHabit(archived))

	visible, err := db.ListHabits(false)
	require.NoError(t, err)
	require.Len(t, visible, 1)

	all, err := db.ListHabits(true)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUpsertCompletion_IdempotentPerDay(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))

	first := &models.Completion{
		ID:          uuid.NewString(),
		HabitID:     habit.ID,
		Day:         "2024-01-05",
		CompletedAt: time.Date(2024, 1, 5, 7, 30, 0, 0, time.UTC),
		Quantity:    1,
		Weather:     "sunny",
	}
	require.NoError(t, db.UpsertCompletion(first))

	// A second upsert for the same day must update in place, not duplicate.
	second := *first
	second.ID = uuid.NewString()
	second.Weather = "rainy"
	require.NoError(t, db.UpsertCompletion(&second))

	completions, err := db.ListCompletions(habit.ID)
	require.NoError(t, err)
	require.Len(t, completions, 1)
	require.Equal(t, "rainy", completions[0].Weather)
	require.Equal(t, first.ID, completions[0].ID, "original row identity survives the upsert")
}

func TestCompletionOptionalFields(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))

	mood := 4
	c := &models.Completion{
		ID:          uuid.NewString(),
		HabitID:     habit.ID,
		Day:         "2024-01-05",
		CompletedAt: time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
		Quantity:    1,
		MoodAfter:   &mood,
	}
	require.NoError(t, db.UpsertCompletion(c))

	got, err := db.GetCompletion(habit.ID, "2024-01-05")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.MoodBefore)
	require.NotNil(t, got.MoodAfter)
	require.Equal(t, 4, *got.MoodAfter)
	require.Empty(t, got.Location)
}

func TestDeleteCompletion_Idempotent(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))

	c := &models.Completion{
		ID:          uuid.NewString(),
		HabitID:     habit.ID,
		Day:         "2024-01-05",
		CompletedAt: time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.UpsertCompletion(c))

	deleted, err := db.DeleteCompletion(habit.ID, "2024-01-05")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = db.DeleteCompletion(habit.ID, "2024-01-05")
	require.NoError(t, err)
	require.False(t, deleted, "second delete is a no-op, not an error")
}

func TestDeleteHabit_CascadesCompletions(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))
	require.NoError(t, db.UpsertCompletion(&models.Completion{
		ID:          uuid.NewString(),
		HabitID:     habit.ID,
		Day:         "2024-01-05",
		CompletedAt: time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
	}))

	require.NoError(t, db.DeleteHabit(habit.ID))

	completions, err := db.ListCompletions(habit.ID)
	require.NoError(t, err)
	require.Empty(t, completions)
}

func TestUpdateHabitCounters(t *testing.T) {
	db := testDB(t)
	habit := testHabit()
	require.NoError(t, db.CreateHabit(habit))

	require.NoError(t, db.UpdateHabitCounters(habit.ID, 4, 9, 30))

	got, err := db.GetHabit(habit.ID)
	require.NoError(t, err)
	require.Equal(t, 4, got.CurrentStreak)
	require.Equal(t, 9, got.BestStreak)
	require.Equal(t, 30, got.TotalCompletions)

	require.ErrorIs(t, db.UpdateHabitCounters("missing", 1, 1, 1), ErrNotFound)
}

func TestTodoLifecycle(t *testing.T) {
	db := testDB(t)
	todo := &models.Todo{
		ID:        uuid.NewString(),
		Title:     "renew passport",
		Priority:  1,
		Due:       "2024-02-01",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.CreateTodo(todo))

	open, err := db.ListTodos(false)
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, db.SetTodoDone(todo.ID, true))
	open, err = db.ListTodos(false)
	require.NoError(t, err)
	require.Empty(t, open)

	all, err := db.ListTodos(true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.True(t, all[0].Done)
}

func TestMoodsSince(t *testing.T) {
	db := testDB(t)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	for i, rating := range []int{2, 3, 5} {
		require.NoError(t, db.CreateMood(&models.MoodEntry{
			ID:       uuid.NewString(),
			LoggedAt: now.AddDate(0, 0, -i*5),
			Rating:   rating,
		}))
	}

	recent, err := db.ListMoodsSince(now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, recent, 2)
}

func TestSearchNotes(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.CreateNote(&models.Note{
		ID: uuid.NewString(), Title: "Garden plan", Body: "tomatoes and basil",
		CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, db.CreateNote(&models.Note{
		ID: uuid.NewString(), Title: "Books", Body: "reading list",
		CreatedAt: time.Now().UTC(),
	}))

	got, err := db.SearchNotes("tomato")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Garden plan", got[0].Title)

	all, err := db.SearchNotes("")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestTransactionsBetween(t *testing.T) {
	db := testDB(t)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := jan.AddDate(0, 1, 0)

	require.NoError(t, db.CreateTransaction(&models.Transaction{
		ID: uuid.NewString(), OccurredAt: jan.AddDate(0, 0, 10),
		Amount: 42.50, Category: "groceries",
	}))
	require.NoError(t, db.CreateTransaction(&models.Transaction{
		ID: uuid.NewString(), OccurredAt: feb.AddDate(0, 0, 1),
		Amount: 9.99, Category: "coffee",
	}))

	january, err := db.ListTransactionsBetween(jan, feb)
	require.NoError(t, err)
	require.Len(t, january, 1)
	require.Equal(t, "groceries", january[0].Category)
}

func TestMealsForDay(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.CreateMeal(&models.Meal{
		ID: uuid.NewString(), Day: "2024-01-05", Name: "oatmeal",
		Calories: 350, Protein: 12, LoggedAt: time.Now().UTC(),
	}))
	require.NoError(t, db.CreateMeal(&models.Meal{
		ID: uuid.NewString(), Day: "2024-01-06", Name: "salad",
		Calories: 420, Protein: 20, LoggedAt: time.Now().UTC(),
	}))

	meals, err := db.ListMealsForDay("2024-01-05")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	require.Equal(t, "oatmeal", meals[0].Name)
}
