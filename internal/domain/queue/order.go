package queue

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/graceolivia/ToDoistChoreQueue/internal/todoist"
)

// orderPrefix matches a leading run of two or more digits at a word
// boundary, e.g. "02 trash". A single digit is treated as part of the task
// text, not an ordering prefix.
var orderPrefix = regexp.MustCompile(`^\s*(\d{2,})\b`)

// noPrefix sorts unprefixed tasks after every explicitly prefixed one.
const noPrefix int64 = 1_000_000_000

// SortTasks returns the tasks of one project in queue order: ascending by
// numeric content prefix, then creation time, then task ID. The input slice
// is not modified. Index 0 of the result is the queue head.
func SortTasks(tasks []todoist.Task) []todoist.Task {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b todoist.Task) int {
		ap, bp := contentPrefix(a.Content), contentPrefix(b.Content)
		switch {
		case ap < bp:
			return -1
		case ap > bp:
			return 1
		}
		if c := strings.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
			return c
		}
		// Creation timestamps are expected to be unique per project; fall
		// back to ID order so equal timestamps still sort deterministically.
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}

func contentPrefix(content string) int64 {
	m := orderPrefix.FindStringSubmatch(content)
	if m == nil {
		return noPrefix
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return noPrefix
	}
	return n
}
