package domain

import (
	"strings"
	"time"
)

// Account kinds shown in the user list.
const (
	KindUser  = "User"
	KindAdmin = "Admin"
)

// MinPasswordLength is enforced on account creation.
const MinPasswordLength = 8

// User is an account holder. AdminRole is RoleNone for regular users.
type User struct {
	ID                 int
	Name               string
	Email              string
	Kind               string
	Company            string
	Phone              string
	NotificationEmails string // comma-separated
	AdminRole          Role
	PasswordHash       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UserPatch holds the editable profile fields; nil means unchanged.
type UserPatch struct {
	Name               *string
	Email              *string
	Company            *string
	Phone              *string
	NotificationEmails *string
}

// NotificationList splits NotificationEmails into trimmed, non-empty addresses.
func (u *User) NotificationList() []string {
	var out []string
	for _, e := range strings.Split(u.NotificationEmails, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether name, email or company contains term, ignoring case.
func (u *User) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.Email), term) ||
		strings.Contains(strings.ToLower(u.Company), term)
}

// ValidatePassword applies the account creation form rules.
func ValidatePassword(password, confirm string) error {
	if password != confirm {
		return invalid("confirm_password", "passwords do not match")
	}
	if len(password) < MinPasswordLength {
		return invalid("password", "must be at least 8 characters")
	}
	return nil
}

// NormalizeEmail lower-cases and trims an address for uniqueness checks.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
