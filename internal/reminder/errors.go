package reminder

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidInterval      = errors.New("invalid reminder interval")
)
