package topicfilter

import "errors"

var (
	// ErrNilGuardian is returned by New when no guardian is supplied.
	ErrNilGuardian = errors.New("guardian must not be nil")

	// ErrNilCategoryStore is returned by New when no category store is
	// supplied.
	ErrNilCategoryStore = errors.New("category store must not be nil")

	// ErrNilTagStore is returned by New when no tag store is supplied.
	ErrNilTagStore = errors.New("tag store must not be nil")
)
