package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

func validUserInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:            "Ann Lee",
		Email:           "ann@example.com",
		Company:         "Lee Labs",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	audit := &stubAuditLog{}
	svc := NewUserService(seededStore(t), audit, nop)

	u, err := svc.CreateUser(context.Background(), 4, validUserInput())
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if u.ID != 9 {
		t.Fatalf("expected id 9, got %d", u.ID)
	}
	if u.Kind != domain.KindUser || u.AdminRole != domain.RoleNone {
		t.Fatalf("unexpected kind/role: %s %q", u.Kind, u.AdminRole)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatalf("password hash does not match")
	}
	if kinds := audit.kinds(); len(kinds) != 1 || kinds[0] != domain.AuditUserCreated {
		t.Fatalf("expected one user_created event, got %v", kinds)
	}
	if audit.events[0].ActorID != 4 {
		t.Fatalf("actor not recorded")
	}
}

func TestUserService_CreateUser_PasswordRules(t *testing.T) {
	svc := NewUserService(seededStore(t), nil, nop)

	short := validUserInput()
	short.Password, short.ConfirmPassword = "short", "short"
	if _, err := svc.CreateUser(context.Background(), 4, short); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for short password, got %v", err)
	}

	mismatch := validUserInput()
	mismatch.ConfirmPassword = "something-else"
	if _, err := svc.CreateUser(context.Background(), 4, mismatch); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for mismatch, got %v", err)
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := NewUserService(seededStore(t), nil, nop)

	in := validUserInput()
	in.Email = "JOHN@example.com"
	if _, err := svc.CreateUser(context.Background(), 4, in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_CreateUser_LegacyAdminType(t *testing.T) {
	svc := NewUserService(seededStore(t), nil, nop)

	in := validUserInput()
	in.AdminType = domain.AdminTypeBilling
	u, err := svc.CreateUser(context.Background(), 4, in)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.AdminRole != domain.RoleBillingAdmin || u.Kind != domain.KindAdmin {
		t.Fatalf("legacy billing not projected: %q %s", u.AdminRole, u.Kind)
	}

	bad := validUserInput()
	bad.Email = "bad@example.com"
	bad.AdminType = "owner"
	if _, err := svc.CreateUser(context.Background(), 4, bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown admin type, got %v", err)
	}
}

func TestUserService_SetRole(t *testing.T) {
	audit := &stubAuditLog{}
	svc := NewUserService(seededStore(t), audit, nop)

	u, err := svc.SetRole(context.Background(), 4, 1, domain.RoleInventoryAdmin)
	if err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if u.AdminRole != domain.RoleInventoryAdmin {
		t.Fatalf("role not applied")
	}
	if _, err := svc.SetRole(context.Background(), 4, 4, domain.RoleNone); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected self-demotion to be forbidden, got %v", err)
	}
	if _, err := svc.SetRole(context.Background(), 4, 404, domain.RoleBillingAdmin); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if kinds := audit.kinds(); len(kinds) != 1 || kinds[0] != domain.AuditRoleChanged {
		t.Fatalf("expected one role_changed event, got %v", kinds)
	}
}

func TestUserService_UpdateAndList(t *testing.T) {
	svc := NewUserService(seededStore(t), nil, nop)

	phone := "555-000-0000"
	u, err := svc.UpdateUser(context.Background(), 4, 2, domain.UserPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if u.Phone != phone || u.Name != "Jane Smith" {
		t.Fatalf("unexpected user after patch: %+v", u)
	}

	users, _ := svc.ListUsers(context.Background(), "innovate")
	if len(users) != 1 || users[0].ID != 3 {
		t.Fatalf("search by company failed: %+v", users)
	}

	if _, err := svc.GetUser(context.Background(), 77); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
