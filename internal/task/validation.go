package task

import "strings"

// CreateInput is a validated, trimmed create payload.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput is a validated partial-update payload. Nil fields were not
// provided and must be left untouched.
type UpdateInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// ParseCreateInput validates a decoded request body. Fields are checked for
// JSON type, not just presence: a numeric title is rejected the same way a
// missing one is.
func ParseCreateInput(body map[string]any) (CreateInput, error) {
	title, err := requireString(body, "title", ErrTitleInvalid)
	if err != nil {
		return CreateInput{}, err
	}

	var in CreateInput
	in.Title = title

	if raw, ok := body["description"]; ok {
		desc, ok := raw.(string)
		if !ok {
			return CreateInput{}, ErrDescriptionInvalid
		}
		in.Description = strings.TrimSpace(desc)
	}
	return in, nil
}

// ParseUpdateInput validates only the fields that were provided; an empty
// body is a legal no-field update.
func ParseUpdateInput(body map[string]any) (UpdateInput, error) {
	var in UpdateInput

	if _, ok := body["title"]; ok {
		title, err := requireString(body, "title", ErrTitleInvalid)
		if err != nil {
			return UpdateInput{}, err
		}
		in.Title = &title
	}

	if raw, ok := body["description"]; ok {
		desc, ok := raw.(string)
		if !ok {
			return UpdateInput{}, ErrDescriptionInvalid
		}
		trimmed := strings.TrimSpace(desc)
		in.Description = &trimmed
	}

	if raw, ok := body["completed"]; ok {
		completed, ok := raw.(bool)
		if !ok {
			return UpdateInput{}, ErrCompletedInvalid
		}
		in.Completed = &completed
	}

	return in, nil
}

func requireString(body map[string]any, key string, invalid error) (string, error) {
	raw, ok := body[key]
	if !ok {
		return "", invalid
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
}
