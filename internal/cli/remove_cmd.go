package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttakeda/daybook/internal/repository"
)

func newRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTodoID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			if !yes && app.interactive() {
				existing, err := app.Todos.GetByID(ctx, id)
				if err != nil {
					if errors.Is(err, repository.ErrNotFound) {
						// Already gone; deletion is idempotent.
						fmt.Fprintf(cmd.OutOrStdout(), "Todo #%d is already gone.\n", id)
						return nil
					}
					return err
				}

				var confirmed bool
				if err := confirmDeleteForm(existing.Title, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Todos.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed todo #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
