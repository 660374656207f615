package cli

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/ttakeda/daybook/internal/domain"
)

// validateTitleField mirrors the create/update schema constraint for titles.
func validateTitleField(s string) error {
	if s == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(s) > domain.TitleMaxLen {
		return fmt.Errorf("title must be %d characters or fewer", domain.TitleMaxLen)
	}
	return nil
}

// validateDescriptionField mirrors the schema constraint for descriptions.
func validateDescriptionField(s string) error {
	if s == "" {
		return errors.New("description is required")
	}
	if utf8.RuneCountInString(s) > domain.DescriptionMaxLen {
		return fmt.Errorf("description must be %d characters or fewer", domain.DescriptionMaxLen)
	}
	return nil
}

// todoForm collects a title and description, pre-filled with the current
// values when editing.
func todoForm(title, description *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Buy milk").
				Value(title).
				Validate(validateTitleField),
			huh.NewText().
				Title("Description").
				Placeholder("What needs doing?").
				Value(description).
				Validate(validateDescriptionField),
		),
	).WithShowHelp(false)
}

// confirmDeleteForm asks before removing a todo.
func confirmDeleteForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", title)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithShowHelp(false)
}
