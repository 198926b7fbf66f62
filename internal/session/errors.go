package session

import "errors"

// ErrNoProgressLog is returned when a record insert finds no progress log to
// insert into. Callers match it with errors.Is.
var ErrNoProgressLog = errors.New("progress log not found")
