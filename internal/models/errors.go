package models

import "errors"

// Error categories surfaced by the data layer. Call sites wrap these with
// entity context via fmt.Errorf("...: %w", ...), so handlers can classify
// failures with errors.Is without losing the message.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrValidation    = errors.New("invalid argument")
	ErrSlugExhausted = errors.New("slug candidates exhausted")
)
