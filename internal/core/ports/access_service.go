package ports

import (
	"context"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// AccessStatus answers "may this user use this device".
type AccessStatus struct {
	UserID     int
	DeviceID   string
	HasAccess  bool // the grant alone
	Blocked    bool // billing suspension
	CanOperate bool // HasAccess && !Blocked
}

// MatrixEntry is one cell of the access grid for a user.
type MatrixEntry struct {
	Device  domain.Device
	Granted bool
}

// AccessService toggles grants and answers access queries.
type AccessService interface {
	Toggle(ctx context.Context, actorID, userID int, deviceID string) (*domain.AccessRight, error)
	Check(ctx context.Context, userID int, deviceID string) (*AccessStatus, error)
	Matrix(ctx context.Context, userID int) ([]MatrixEntry, error)
	Rights(ctx context.Context) ([]domain.AccessRight, error)
	Unassigned(ctx context.Context) ([]domain.Device, error)
	DevicesForUser(ctx context.Context, userID int) ([]domain.DeviceView, error)
}
