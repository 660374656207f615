package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ttakeda/daybook/internal/calendar"
	"github.com/ttakeda/daybook/internal/cli/formatter"
	"github.com/ttakeda/daybook/internal/domain"
	"github.com/ttakeda/daybook/internal/livequery"
)

// snapshotMsg carries a fresh live-query result set.
type snapshotMsg []*domain.Todo

// todosLoadedMsg signals the initial load finished.
type todosLoadedMsg struct {
	todos []*domain.Todo
	err   error
}

type calKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Select    key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultCalKeyMap() calKeyMap {
	return calKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next month")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select day")),
		Clear:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear selection")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// calendarModel is the interactive month view. It tracks a cursor day, an
// optional confirmed selection, and re-renders whenever the live query
// pushes a new snapshot.
type calendarModel struct {
	app  *App
	sub  *livequery.Subscription
	keys calKeyMap

	todos    []*domain.Todo
	cursor   time.Time
	selected *time.Time
	loading  bool
	err      error
}

func newCalendarModel(app *App) *calendarModel {
	now := time.Now()
	return &calendarModel{
		app:     app,
		sub:     app.Feed.Subscribe(),
		keys:    defaultCalKeyMap(),
		cursor:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		loading: true,
	}
}

func (m *calendarModel) Init() tea.Cmd {
	return tea.Batch(m.loadTodos, m.waitForSnapshot)
}

func (m *calendarModel) loadTodos() tea.Msg {
	todos, err := m.app.Todos.List(context.Background())
	return todosLoadedMsg{todos: todos, err: err}
}

func (m *calendarModel) waitForSnapshot() tea.Msg {
	snap, ok := <-m.sub.Ch()
	if !ok {
		return nil
	}
	return snapshotMsg(snap)
}

func (m *calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.todos = msg.todos
		}
		return m, nil

	case snapshotMsg:
		m.todos = msg
		return m, m.waitForSnapshot

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.app.Feed.Unsubscribe(m.sub)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.cursor = m.cursor.AddDate(0, 0, -1)
		case key.Matches(msg, m.keys.Right):
			m.cursor = m.cursor.AddDate(0, 0, 1)
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.cursor.AddDate(0, 0, -7)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.cursor.AddDate(0, 0, 7)
		case key.Matches(msg, m.keys.PrevMonth):
			m.cursor = m.cursor.AddDate(0, -1, 0)
		case key.Matches(msg, m.keys.NextMonth):
			m.cursor = m.cursor.AddDate(0, 1, 0)
		case key.Matches(msg, m.keys.Select):
			day := m.cursor
			m.selected = &day
		case key.Matches(msg, m.keys.Clear):
			m.selected = nil
		}
		return m, nil
	}

	return m, nil
}

func (m *calendarModel) View() string {
	if m.loading {
		return "Loading…\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	res := calendar.Bucket(m.todos, m.selected)

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.cursor.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(res.Markers))
	b.WriteString("\n")
	b.WriteString(m.renderDayList(res.Filtered))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

// weekdayOrder returns the column order for the grid, honoring the
// week-start setting.
func (m *calendarModel) weekdayOrder() []time.Weekday {
	if m.app.Config.WeekStartsMonday {
		return []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday,
		}
	}
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}

func (m *calendarModel) renderGrid(markers map[string]calendar.Marker) string {
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.app.Config.MarkColor)).Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.app.Config.SelectedColor)).
		Foreground(lipgloss.Color("#ffffff"))
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	order := m.weekdayOrder()
	var b strings.Builder

	for i, wd := range order {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(formatter.StyleDim.Render(wd.String()[:3]))
	}
	b.WriteString("\n")

	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday()) - int(order[0])
	if offset < 0 {
		offset += 7
	}
	day := first.AddDate(0, 0, -offset)

	for week := 0; week < 6; week++ {
		for col := 0; col < 7; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			cell := fmt.Sprintf("%3d", day.Day())
			marker := markers[calendar.DayKey(day)]

			switch {
			case calendar.SameDay(day, m.cursor):
				cell = cursorStyle.Render(cell)
			case marker.Selected:
				cell = selectedStyle.Render(cell)
			case marker.Marked:
				cell = markStyle.Render(cell)
			case day.Month() != m.cursor.Month():
				cell = formatter.StyleDim.Render(cell)
			}
			b.WriteString(cell)

			if marker.Marked {
				b.WriteString(markStyle.Render("•"))
			} else {
				b.WriteString(" ")
			}
			day = day.AddDate(0, 0, 1)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *calendarModel) renderDayList(filtered []*domain.Todo) string {
	if m.selected == nil {
		return formatter.StyleDim.Render("Select a day to see what you created then.") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render("Todos created on "+calendar.DayKey(*m.selected)) + "\n")
	if len(filtered) == 0 {
		b.WriteString(formatter.StyleDim.Render("Nothing created on this day.") + "\n")
		return b.String()
	}
	for _, t := range filtered {
		fmt.Fprintf(&b, "  %s %s\n",
			formatter.StyleBlue.Render(fmt.Sprintf("#%d", t.ID)),
			formatter.Truncate(t.Title, 60))
	}
	return b.String()
}

func (m *calendarModel) renderHelp() string {
	bindings := []key.Binding{
		m.keys.Left, m.keys.Right, m.keys.PrevMonth, m.keys.NextMonth,
		m.keys.Select, m.keys.Clear, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return formatter.StyleDim.Render(strings.Join(parts, " · "))
}

// runCalendarTUI starts the interactive calendar.
func runCalendarTUI(app *App) error {
	program := tea.NewProgram(newCalendarModel(app))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running calendar: %w", err)
	}
	return nil
}
