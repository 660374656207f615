// Package schema holds the form-level validation rules for todo payloads.
// Validators are pure and synchronous: they return a structured
// *ValidationError naming every violated field so callers can render
// per-field messages, and never reach the store on failure.
package schema

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ttakeda/daybook/internal/domain"
)

// CreateTodoInput is the payload for creating a todo.
type CreateTodoInput struct {
	Title       string
	Description string
}

// UpdateTodoInput is the payload for updating a todo. All fields are
// required: updates are full replacements, not partial patches.
type UpdateTodoInput struct {
	ID          int64
	Title       string
	Description string
}

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all field violations found in one payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// ByField returns the message for the given field, or "" if it passed.
func (e *ValidationError) ByField(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

// ValidateCreate checks a create payload. Returns nil when valid.
func ValidateCreate(in CreateTodoInput) *ValidationError {
	fields := validateText(in.Title, in.Description)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// ValidateUpdate checks an update payload. Returns nil when valid.
func ValidateUpdate(in UpdateTodoInput) *ValidationError {
	var fields []FieldError
	if in.ID <= 0 {
		fields = append(fields, FieldError{Field: "id", Message: "must be a positive integer"})
	}
	fields = append(fields, validateText(in.Title, in.Description)...)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateText(title, description string) []FieldError {
	var fields []FieldError

	if title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "is required"})
	} else if utf8.RuneCountInString(title) > domain.TitleMaxLen {
		fields = append(fields, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be %d characters or fewer", domain.TitleMaxLen),
		})
	}

	if description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "is required"})
	} else if utf8.RuneCountInString(description) > domain.DescriptionMaxLen {
		fields = append(fields, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be %d characters or fewer", domain.DescriptionMaxLen),
		})
	}

	return fields
}
