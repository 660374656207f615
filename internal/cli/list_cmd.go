package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ttakeda/daybook/internal/calendar"
	"github.com/ttakeda/daybook/internal/cli/formatter"
)

// printTodoList writes the todo table, filtered to a day when one is given.
func printTodoList(w io.Writer, app *App, day *time.Time) error {
	todos, err := app.Todos.List(context.Background())
	if err != nil {
		return err
	}

	res := calendar.Bucket(todos, day)
	if day != nil && len(res.Filtered) == 0 {
		fmt.Fprintf(w, "No todos created on %s.\n", calendar.DayKey(*day))
		return nil
	}
	fmt.Fprint(w, formatter.TodoTable(res.Filtered))
	return nil
}

func newListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos, optionally for a single day",
		RunE: func(cmd *cobra.Command, args []string) error {
			var day *time.Time
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				day = &parsed
			}
			return printTodoList(cmd.OutOrStdout(), app, day)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only todos created on this day (YYYY-MM-DD)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTodoID(args[0])
			if err != nil {
				return err
			}
			todo, err := app.Todos.GetByID(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.TodoDetail(todo))
			return nil
		},
	}
}
