package note

import (
	"errors"
)

var (
	ErrNoSession       = errors.New("no user session")
	ErrEmptyID         = errors.New("note id is empty")
	ErrEmptyContent    = errors.New("note content is empty")
	ErrUnknownIDScheme = errors.New("unknown note id scheme")
)
