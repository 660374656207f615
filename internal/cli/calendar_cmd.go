package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Browse todos on an interactive month calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the calendar needs an interactive terminal; use 'daybook list --date YYYY-MM-DD' instead")
			}
			return runCalendarTUI(app)
		},
	}
}
