package service

import "errors"

var (
	// ErrDuplicateEmail is returned when an application already exists for the email.
	ErrDuplicateEmail = errors.New("email already submitted")
	// ErrNotFound is returned when no submission exists for the given id.
	ErrNotFound = errors.New("submission not found")
)
