package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ttakeda/daybook/internal/domain"
)

func sampleTodo() *domain.Todo {
	at := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.Local)
	return &domain.Todo{
		ID:          1,
		Title:       "Buy milk",
		Description: "2%",
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

func TestTodoTable_Empty(t *testing.T) {
	out := TodoTable(nil)
	assert.Contains(t, out, "No todos yet.")
}

func TestTodoTable_RendersRows(t *testing.T) {
	out := TodoTable([]*domain.Todo{sampleTodo()})
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "2%")
	assert.Contains(t, out, "2024-01-15")
}

func TestTodoDetail(t *testing.T) {
	out := TodoDetail(sampleTodo())
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "created")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	long := strings.Repeat("a", 50)
	got := Truncate(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"x", "y"}, {"xx", "yy"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
