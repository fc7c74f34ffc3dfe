package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmptyTitle         = errors.New("task title is required")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyPassword      = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuditNotRecorded   = errors.New("task saved but audit trail not recorded")
)
