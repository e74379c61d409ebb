package ports

import (
	"context"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// CreateUserInput carries the account creation form.
type CreateUserInput struct {
	Name               string
	Email              string
	Kind               string // "User" or "Admin"
	Company            string
	Phone              string
	NotificationEmails string
	AdminRole          domain.Role
	// AdminType is the older full/billing model; used only when AdminRole is empty.
	AdminType       domain.AdminType
	Password        string
	ConfirmPassword string
}

// UserService manages accounts and admin roles.
type UserService interface {
	CreateUser(ctx context.Context, actorID int, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, actorID, id int, patch domain.UserPatch) (*domain.User, error)
	SetRole(ctx context.Context, actorID, id int, role domain.Role) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context, search string) ([]domain.User, error)
}
