package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user already exists")
	ErrDeviceExists       = errors.New("device already exists")
)

// NotFoundError reports an unknown user, device or reminder id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UserNotFound builds the NotFoundError for a user id.
func UserNotFound(id int) error {
	return &NotFoundError{Entity: "user", ID: fmt.Sprint(id)}
}

// DeviceNotFound builds the NotFoundError for a device id.
func DeviceNotFound(id string) error {
	return &NotFoundError{Entity: "device", ID: id}
}

// ReminderNotFound builds the NotFoundError for a service reminder id.
func ReminderNotFound(id string) error {
	return &NotFoundError{Entity: "service reminder", ID: id}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
