package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidCategory   = errors.New("category must be one of Mobile, Outdoor, Indoor")
	ErrEmptyTitle        = errors.New("activity title is required")
	ErrDuplicateActivity = errors.New("activity already exists")
)
