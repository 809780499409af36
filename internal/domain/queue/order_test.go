package queue_test

import (
	"testing"

	"github.com/graceolivia/ToDoistChoreQueue/internal/domain/queue"
	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
	"github.com/stretchr/testify/require"
)

func contents(tasks []todoist.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Content
	}
	return out
}

func TestSortTasks_NumericPrefixOrder(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "1", Content: "10 dishes", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", Content: "02 trash", CreatedAt: "2024-01-02T00:00:00Z"},
		{ID: "3", Content: "05 laundry", CreatedAt: "2024-01-03T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"02 trash", "05 laundry", "10 dishes"}, contents(sorted))
}

func TestSortTasks_UnprefixedSortsLast(t *testing.T) {
	// The unprefixed task is the oldest, but prefix always wins over age.
	tasks := []todoist.Task{
		{ID: "1", Content: "wipe counters", CreatedAt: "2020-01-01T00:00:00Z"},
		{ID: "2", Content: "99 mop floors", CreatedAt: "2024-06-01T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"99 mop floors", "wipe counters"}, contents(sorted))
}

func TestSortTasks_SingleDigitIsNotAPrefix(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "1", Content: "1 thing to do", CreatedAt: "2024-01-02T00:00:00Z"},
		{ID: "2", Content: "42 take out recycling", CreatedAt: "2024-01-03T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"42 take out recycling", "1 thing to do"}, contents(sorted))
}

func TestSortTasks_LeadingWhitespaceBeforePrefix(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "1", Content: "20 vacuum", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", Content: "  03 water plants", CreatedAt: "2024-01-02T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"  03 water plants", "20 vacuum"}, contents(sorted))
}

func TestSortTasks_EqualPrefixFallsBackToCreatedAt(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "1", Content: "clean sink", CreatedAt: "2024-03-02T00:00:00Z"},
		{ID: "2", Content: "clean tub", CreatedAt: "2024-03-01T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"clean tub", "clean sink"}, contents(sorted))
}

func TestSortTasks_IdenticalTimestampsFallBackToID(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "b", Content: "second", CreatedAt: "2024-03-01T00:00:00Z"},
		{ID: "a", Content: "first", CreatedAt: "2024-03-01T00:00:00Z"},
	}

	sorted := queue.SortTasks(tasks)
	require.Equal(t, []string{"first", "second"}, contents(sorted))
}

func TestSortTasks_DoesNotMutateInput(t *testing.T) {
	tasks := []todoist.Task{
		{ID: "1", Content: "10 dishes", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "2", Content: "02 trash", CreatedAt: "2024-01-02T00:00:00Z"},
	}

	_ = queue.SortTasks(tasks)
	require.Equal(t, []string{"10 dishes", "02 trash"}, contents(tasks))
}
