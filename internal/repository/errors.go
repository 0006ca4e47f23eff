package repository

import "errors"

// ErrNotFound is returned when a fetch, scoped update or scoped delete
// matched no row. Callers translate it into the NotFound taxonomy;
// repositories never swallow it.
var ErrNotFound = errors.New("record not found")
