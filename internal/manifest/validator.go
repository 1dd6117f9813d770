package manifest

import (
	"fmt"
	"strings"
)

// PassedMessage is printed when a manifest satisfies every content rule.
const PassedMessage = "Validation passed."

// Fields named by a ValidationError.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldRepo        = "repo"
	FieldStages      = "stages"
	FieldLabel       = "label"
	FieldDescription = "description"
)

// ValidationError reports the first content rule a Quest breaks.
type ValidationError struct {
	Field string
	Stage int // 1-based stage index; 0 for top-level fields
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field == FieldStages:
		return "Validation Error: at least one stage must be defined."
	case e.Stage > 0:
		return fmt.Sprintf("Validation Error: stage %d %s cannot be empty.", e.Stage, e.Field)
	default:
		return fmt.Sprintf("Validation Error: %s cannot be empty.", e.Field)
	}
}

// Validate checks q in a fixed order and returns a *ValidationError for the
// first failing rule, or nil. ReadOnly and Final are never inspected.
func Validate(q *Quest) error {
	required := []struct {
		field string
		value string
	}{
		{FieldTitle, q.Title},
		{FieldAuthor, q.Author},
		{FieldRepo, q.Repo},
	}
	for _, r := range required {
		if blank(r.value) {
			return &ValidationError{Field: r.field}
		}
	}

	if len(q.Stages) == 0 {
		return &ValidationError{Field: FieldStages}
	}

	for i, s := range q.Stages {
		if blank(s.Label) {
			return &ValidationError{Field: FieldLabel, Stage: i + 1}
		}
		if blank(s.Description) {
			return &ValidationError{Field: FieldDescription, Stage: i + 1}
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
