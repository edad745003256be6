package catalog

import "errors"

// ErrDatabaseNotFound is returned when no catalog entry matches a name.
var ErrDatabaseNotFound = errors.New("database not found")
