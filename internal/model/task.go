package model

import "time"

// TimeLayout is ISO-8601 UTC with millisecond precision, the format used in
// the storage file and in all API responses.
const TimeLayout = "2006-01-02T15:04:05.000Z"

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	// UpdatedAt stays empty until the task has been updated at least once.
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Now returns the current UTC time in TimeLayout.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// NextID returns the id for a new task: max existing id + 1, or 1 for an
// empty collection. Ids are never reused after deletion, except that
// deleting the highest-id task frees that id again.
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
