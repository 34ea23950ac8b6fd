package service

import "errors"

var (
	// ErrEmptyField is returned by AddRecord when the title or the
	// description is empty or whitespace-only. The check happens before
	// any side effect.
	ErrEmptyField = errors.New("title and description must not be empty")

	// ErrValidationEmptyID is returned by server-side operations that
	// received an empty note id.
	ErrValidationEmptyID = errors.New("no note id provided")
)
