package domain

import "errors"

// All of these are local, recoverable conditions: the caller gets a sentinel
// and prior state is left untouched.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectHasTasks       = errors.New("project has referencing tasks")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrNotAuthenticated      = errors.New("no authenticated user")
	ErrMalformedBackup       = errors.New("malformed backup document")
)
