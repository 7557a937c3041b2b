package task

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID          = errors.New("invalid task id")
	ErrTitleInvalid       = errors.New("title is required and must be a non-empty string")
	ErrDescriptionInvalid = errors.New("description must be a string")
	ErrCompletedInvalid   = errors.New("completed must be a boolean")
)

// NotFoundError reports the id that was asked for, so handlers can echo it
// back in the response body.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}
