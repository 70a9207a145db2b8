package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrEntryNotFound     = errors.New("entry doesn't exists")
	ErrEntryExists       = errors.New("entry for this date already exists")
	ErrWrongOwner        = errors.New("entry belongs to another user")
	ErrEntryDateInFuture = errors.New("entry date is in the future")
	ErrEmptyContent      = errors.New("entry content is empty")

	ErrStreakNotFound = errors.New("streak record doesn't exists")
)
