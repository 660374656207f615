package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ttakeda/daybook/internal/cli/formatter"
	"github.com/ttakeda/daybook/internal/config"
	"github.com/ttakeda/daybook/internal/livequery"
	"github.com/ttakeda/daybook/internal/schema"
	"github.com/ttakeda/daybook/internal/service"
)

// App holds everything CLI commands need: the todo service, the live feed
// for the calendar view, and the loaded configuration.
type App struct {
	Todos  service.TodoService
	Feed   *livequery.Feed
	Config config.Config

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags-only behavior when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "daybook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "daybook",
		Short:        "Local todo list with a calendar view",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: open the calendar in a terminal,
			// print the plain list otherwise.
			if app.interactive() {
				return runCalendarTUI(app)
			}
			return printTodoList(cmd.OutOrStdout(), app, nil)
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newCalendarCmd(app),
	)

	return root
}

// parseTodoID parses a positional id argument.
func parseTodoID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q: expected a positive integer", arg)
	}
	return id, nil
}

// printFieldErrors renders a validation failure one line per field so the
// user can fix each offending input.
func printFieldErrors(w io.Writer, verr *schema.ValidationError) {
	for _, f := range verr.Fields {
		fmt.Fprintf(w, "  %s %s\n", formatter.StyleRed.Render(f.Field+":"), f.Message)
	}
}

// reportError translates service errors into user-facing output. Validation
// errors get per-field lines; everything else passes through for cobra to
// print.
func reportError(w io.Writer, err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(w, formatter.StyleRed.Render("Invalid input:"))
		printFieldErrors(w, verr)
		return fmt.Errorf("input validation failed")
	}
	return err
}
