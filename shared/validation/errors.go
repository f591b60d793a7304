package validation

import "errors"

// ErrEmptyDocument is returned when a download yields no bytes at all.
var ErrEmptyDocument = errors.New("empty document")
