package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttakeda/daybook/internal/config"
	"github.com/ttakeda/daybook/internal/domain"
	"github.com/ttakeda/daybook/internal/livequery"
	"github.com/ttakeda/daybook/internal/repository"
	"github.com/ttakeda/daybook/internal/schema"
	"github.com/ttakeda/daybook/internal/service"
	"github.com/ttakeda/daybook/internal/testutil"
)

func createInput(title string) schema.CreateTodoInput {
	return schema.CreateTodoInput{Title: title, Description: "test description"}
}

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. IsInteractive reports false so commands stay flags-only.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	repo := repository.NewSQLiteTodoRepo(db)
	feed := livequery.NewFeed(repo.List)

	return &App{
		Todos:         service.NewTodoService(repo, testutil.NewTestUoW(db), feed),
		Feed:          feed,
		Config:        config.Default(),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedTodo(t *testing.T, app *App, title string) *domain.Todo {
	t.Helper()
	todo, err := app.Todos.Create(context.Background(), createInput(title))
	require.NoError(t, err)
	return todo
}

func TestAddCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "add", "--title", "Buy milk", "--description", "2%")
	require.NoError(t, err)
	assert.Contains(t, out, "Created todo #1")
	assert.Contains(t, out, "Buy milk")
}

func TestAddCmd_ValidationFailure(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "add", "--title", "", "--description", "d")
	require.Error(t, err)
	assert.Contains(t, out, "title:")
	assert.Contains(t, out, "is required")
}

func TestListCmd(t *testing.T) {
	app := testApp(t)
	seedTodo(t, app, "Buy milk")
	seedTodo(t, app, "Walk dog")

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Walk dog")
}

func TestListCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No todos yet.")
}

func TestListCmd_DateFilter(t *testing.T) {
	app := testApp(t)
	seedTodo(t, app, "Today's task")

	today := time.Now().Format("2006-01-02")
	out, err := executeCmd(t, app, "list", "--date", today)
	require.NoError(t, err)
	assert.Contains(t, out, "Today's task")

	// A day with no todos reports the empty state.
	out, err = executeCmd(t, app, "list", "--date", "1999-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No todos created on 1999-01-01")
}

func TestListCmd_BadDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "list", "--date", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestShowCmd(t *testing.T) {
	app := testApp(t)
	todo := seedTodo(t, app, "Buy milk")

	out, err := executeCmd(t, app, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, todo.Title)
}

func TestShowCmd_BadID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "show", "zero")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid todo id")
}

func TestEditCmd(t *testing.T) {
	app := testApp(t)
	todo := seedTodo(t, app, "Buy milk")

	out, err := executeCmd(t, app, "edit", "1", "--title", "Buy oat milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated todo #1")

	// The unset description flag kept the old value.
	fetched, err := app.Todos.GetByID(context.Background(), todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", fetched.Title)
	assert.Equal(t, todo.Description, fetched.Description)
}

func TestEditCmd_NotFound(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "edit", "42", "--title", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRemoveCmd(t *testing.T) {
	app := testApp(t)
	seedTodo(t, app, "Buy milk")

	out, err := executeCmd(t, app, "remove", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed todo #1")

	out, err = executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No todos yet.")
}

func TestRemoveCmd_MissingIsNotAnError(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "remove", "999", "--yes")
	assert.NoError(t, err)
}

func TestRootCmd_NonInteractivePrintsList(t *testing.T) {
	app := testApp(t)
	seedTodo(t, app, "Buy milk")

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
}

func TestCalendarCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
