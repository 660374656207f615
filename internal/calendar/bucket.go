// Package calendar groups todos by their creation day for calendar display.
// Everything here is pure: Bucket recomputes its output from scratch on
// every call and holds no state between invocations.
package calendar

import (
	"fmt"
	"time"

	"github.com/ttakeda/daybook/internal/domain"
)

// Default marker colors, carried over from the original calendar theme.
const (
	DefaultMarkColor     = "#50cebb"
	DefaultSelectedColor = "#00adf5"
)

// Marker is the per-day display annotation for a calendar cell.
type Marker struct {
	Marked        bool
	Selected      bool
	MarkedColor   string
	SelectedColor string
}

// Result is the output of Bucket: a day-key -> marker map for the calendar
// grid plus the todo subset matching the selected day.
type Result struct {
	Markers  map[string]Marker
	Filtered []*domain.Todo
}

// DayKey formats a time as a YYYY-MM-DD calendar-day key in local time.
func DayKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// SameDay reports whether two times fall on the same local calendar day.
// Time of day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Bucket groups todos by creation day and, when a day is selected, filters
// the list down to that day.
//
// Every day with at least one todo gets a single marker; multiple todos on
// the same day collapse into one dot with no count. That is intended
// behavior, not a missing feature.
//
// When selected is non-nil its day gets Selected merged into any existing
// marker, defaulting SelectedColor only if the day carried none. When
// selected is nil the full input list is returned unfiltered.
func Bucket(todos []*domain.Todo, selected *time.Time) Result {
	markers := make(map[string]Marker, len(todos))

	for _, todo := range todos {
		key := DayKey(todo.CreatedAt)
		if m, ok := markers[key]; ok {
			m.Marked = true
			markers[key] = m
			continue
		}
		markers[key] = Marker{
			Marked:      true,
			MarkedColor: DefaultMarkColor,
		}
	}

	if selected == nil {
		return Result{Markers: markers, Filtered: todos}
	}

	key := DayKey(*selected)
	m := markers[key]
	m.Selected = true
	if m.SelectedColor == "" {
		m.SelectedColor = DefaultSelectedColor
	}
	markers[key] = m

	filtered := make([]*domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if SameDay(todo.CreatedAt, *selected) {
			filtered = append(filtered, todo)
		}
	}

	return Result{Markers: markers, Filtered: filtered}
}
