package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
)

type UserService struct {
	store  *store.Shared
	audit  auditor
	logger zerolog.Logger
}

func NewUserService(st *store.Shared, audit ports.AuditLog, logger zerolog.Logger) *UserService {
	return &UserService{store: st, audit: auditor{log: audit, logger: logger}, logger: logger}
}

// CreateUser applies the creation form rules, hashes the password and stores
// the account. A legacy admin type is projected onto the role table.
func (s *UserService) CreateUser(ctx context.Context, actorID int, in ports.CreateUserInput) (*domain.User, error) {
	if err := domain.ValidatePassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}
	role := in.AdminRole
	if role == domain.RoleNone && in.AdminType != domain.AdminTypeNone {
		role = domain.RoleForAdminType(in.AdminType)
		if role == domain.RoleNone {
			return nil, &domain.ValidationError{Field: "admin_type", Reason: "must be full or billing"}
		}
	}
	if role != domain.RoleNone && !role.Valid() {
		return nil, &domain.ValidationError{Field: "admin_role", Reason: "unknown role"}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = s.store.Write(func(st *store.Store) error {
		var err error
		user, err = st.AddUser(store.NewUser{
			Name:               in.Name,
			Email:              in.Email,
			Kind:               in.Kind,
			Company:            in.Company,
			Phone:              in.Phone,
			NotificationEmails: in.NotificationEmails,
			AdminRole:          role,
			PasswordHash:       hash,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditUserCreated, ActorID: actorID, UserID: user.ID, Detail: user.Email})
	s.logger.Info().Int("user_id", user.ID).Str("role", string(user.AdminRole)).Msg("user created")
	return &user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actorID, id int, patch domain.UserPatch) (*domain.User, error) {
	var user domain.User
	err := s.store.Write(func(st *store.Store) error {
		var err error
		user, err = st.UpdateUser(id, patch)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditUserUpdated, ActorID: actorID, UserID: id})
	s.logger.Info().Int("user_id", id).Msg("user updated")
	return &user, nil
}

// SetRole changes the admin role. Callers may not demote themselves.
func (s *UserService) SetRole(ctx context.Context, actorID, id int, role domain.Role) (*domain.User, error) {
	if actorID == id && role != domain.RoleSuperAdmin {
		return nil, fmt.Errorf("set role: cannot change own role: %w", domain.ErrForbidden)
	}
	var user domain.User
	err := s.store.Write(func(st *store.Store) error {
		var err error
		user, err = st.SetAdminRole(id, role)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditRoleChanged, ActorID: actorID, UserID: id, Detail: string(role)})
	s.logger.Info().Int("user_id", id).Str("role", string(role)).Int("actor_id", actorID).Msg("admin role changed")
	return &user, nil
}

func (s *UserService) GetUser(_ context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := s.store.Read(func(st *store.Store) error {
		var err error
		user, err = st.User(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(_ context.Context, search string) ([]domain.User, error) {
	var users []domain.User
	_ = s.store.Read(func(st *store.Store) error {
		users = st.Users(search)
		return nil
	})
	return users, nil
}
