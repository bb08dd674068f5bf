package domain

import "errors"

var (
	ErrUnsupportedGroupBy = errors.New("unsupported group by attribute")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrFetchFailed        = errors.New("fetch memories failed")
	ErrMemoriesNotFound   = errors.New("memories source not found")
)
