package formatter

import (
	"fmt"
	"strings"

	"github.com/ttakeda/daybook/internal/domain"
)

const timestampLayout = "2006-01-02 15:04"

// TodoTable renders todos as an aligned table.
func TodoTable(todos []*domain.Todo) string {
	if len(todos) == 0 {
		return StyleDim.Render("No todos yet.") + "\n"
	}

	headers := []string{"ID", "TITLE", "DESCRIPTION", "CREATED", "UPDATED"}
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			StyleBlue.Render(fmt.Sprintf("%d", t.ID)),
			StyleBold.Render(Truncate(t.Title, 40)),
			Truncate(t.Description, 50),
			StyleDim.Render(t.CreatedAt.Format(timestampLayout)),
			StyleDim.Render(t.UpdatedAt.Format(timestampLayout)),
		})
	}
	return RenderTable(headers, rows)
}

// TodoDetail renders a single todo in long form.
func TodoDetail(t *domain.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("#%d", t.ID)), StyleBold.Render(t.Title))
	fmt.Fprintf(&b, "%s\n", t.Description)
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("created"), t.CreatedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "%s %s\n", StyleDim.Render("updated"), t.UpdatedAt.Format(timestampLayout))
	return b.String()
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
