package ports

import (
	"context"
	"io"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/importer"
)

// AddDeviceInput carries a single device registration. Empty fields take
// store defaults.
type AddDeviceInput struct {
	ID            string
	Name          string
	Location      string
	Status        domain.DeviceStatus
	DeviceType    domain.DeviceType
	Category      domain.Category
	BillingType   domain.BillingType
	InstalledDate time.Time
	SerialNumber  string
	Model         string
}

// ImportResult reports a bulk import.
type ImportResult struct {
	Added   []domain.Device
	Skipped []importer.Skip
}

// DeviceService manages the device inventory.
type DeviceService interface {
	AddDevice(ctx context.Context, actorID int, in AddDeviceInput) (*domain.Device, error)
	ImportDevices(ctx context.Context, actorID int, r io.Reader) (*ImportResult, error)
	GetDevice(ctx context.Context, id string) (*domain.Device, error)
	ListDevices(ctx context.Context, search string) ([]domain.Device, error)
	UpdateConfig(ctx context.Context, actorID int, id string, patch domain.ConfigPatch) (*domain.Device, error)
}
