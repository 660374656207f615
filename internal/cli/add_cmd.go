package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttakeda/daybook/internal/schema"
)

func newAddCmd(app *App) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && description == "" && app.interactive() {
				if err := todoForm(&title, &description).Run(); err != nil {
					return err
				}
			}

			todo, err := app.Todos.Create(context.Background(), schema.CreateTodoInput{
				Title:       title,
				Description: description,
			})
			if err != nil {
				return reportError(cmd.OutOrStdout(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created todo #%d %q\n", todo.ID, todo.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Todo title (1-100 characters)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Todo description (1-500 characters)")

	return cmd
}
