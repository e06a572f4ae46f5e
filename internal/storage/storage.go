package storage

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrHasRegistrations  = errors.New("event has registrations")
)
