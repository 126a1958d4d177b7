package session

import "errors"

var (
	// ErrNoActiveSession is returned when Advance or End is called outside
	// an in-progress session.
	ErrNoActiveSession = errors.New("no active interview session")

	// ErrAlreadyEnded is returned when End is called on a session that has
	// already terminated.
	ErrAlreadyEnded = errors.New("interview session already ended")

	// ErrInvalidRole is returned when the question bank cannot produce any
	// questions for a role.
	ErrInvalidRole = errors.New("no questions available for role")

	// ErrSessionBusy is returned when Advance or End is called while a
	// previous call on the same session is still outstanding. Caller error,
	// not retried internally.
	ErrSessionBusy = errors.New("a session operation is already in flight")
)
