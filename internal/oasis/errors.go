package oasis

import "errors"

var (
	ErrAlreadyWatered  = errors.New("plant was already watered today")
	ErrAlreadyNurtured = errors.New("plant was already nurtured today")
	ErrEmptyMessage    = errors.New("nurture message is empty")
)
