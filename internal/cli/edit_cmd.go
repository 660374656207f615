package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttakeda/daybook/internal/repository"
	"github.com/ttakeda/daybook/internal/schema"
)

func newEditCmd(app *App) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a todo's title and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTodoID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			existing, err := app.Todos.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("todo #%d not found (it may have been removed)", id)
				}
				return err
			}

			// Updates are full replacements: unset flags keep the
			// current value rather than blanking the field.
			if title == "" {
				title = existing.Title
			}
			if description == "" {
				description = existing.Description
			}

			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("description") && app.interactive() {
				if err := todoForm(&title, &description).Run(); err != nil {
					return err
				}
			}

			updated, err := app.Todos.Update(ctx, schema.UpdateTodoInput{
				ID:          id,
				Title:       title,
				Description: description,
			})
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("todo #%d not found (it may have been removed)", id)
				}
				return reportError(cmd.OutOrStdout(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated todo #%d %q\n", updated.ID, updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")

	return cmd
}
