package repository

import "errors"

// ErrNotFound is returned when a query targets a record that does not exist.
// Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")
