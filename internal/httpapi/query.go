package httpapi

import (
	"errors"
	"net/url"
	"strings"

	"tasklite/internal/model"
)

type listFilters struct {
	hasCompleted bool
	completed    bool
}

func parseListFilters(q url.Values) (listFilters, error) {
	var filters listFilters

	if v := q.Get("completed"); v != "" {
		parsed, err := parseBoolStrict(v)
		if err != nil {
			return listFilters{}, errors.New("completed must be true or false")
		}
		filters.hasCompleted = true
		filters.completed = parsed
	}

	return filters, nil
}

func filterTasks(tasks []model.Task, filters listFilters) []model.Task {
	if !filters.hasCompleted {
		return tasks
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == filters.completed {
			out = append(out, t)
		}
	}
	return out
}

func parseBoolStrict(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("not a bool")
	}
}
