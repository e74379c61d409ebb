package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/importer"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
)

type DeviceService struct {
	store  *store.Shared
	audit  auditor
	logger zerolog.Logger
}

func NewDeviceService(st *store.Shared, audit ports.AuditLog, logger zerolog.Logger) *DeviceService {
	return &DeviceService{store: st, audit: auditor{log: audit, logger: logger}, logger: logger}
}

func (s *DeviceService) AddDevice(ctx context.Context, actorID int, in ports.AddDeviceInput) (*domain.Device, error) {
	nd := store.NewDevice{
		ID:            in.ID,
		Name:          in.Name,
		Location:      in.Location,
		Status:        in.Status,
		DeviceType:    in.DeviceType,
		InstalledDate: in.InstalledDate,
		Category:      in.Category,
		SerialNumber:  in.SerialNumber,
		Model:         in.Model,
	}
	billingType := in.BillingType
	if billingType == "" && in.DeviceType == domain.DeviceTypeSales {
		billingType = domain.BillingPurchase
	}
	if billingType != "" {
		nd.Billing = &domain.Billing{Type: billingType, PaymentStatus: domain.PaymentCurrent}
		if nd.DeviceType == "" {
			nd.DeviceType = domain.DeviceTypeFor(billingType)
		}
	}

	var device domain.Device
	err := s.store.Write(func(st *store.Store) error {
		if nd.Billing != nil {
			nd.Billing.LastPayment = st.Today()
		}
		var err error
		device, err = st.AddDevice(nd)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add device: %w", err)
	}

	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditDeviceAdded, ActorID: actorID, DeviceID: device.ID, Detail: device.Name})
	s.logger.Info().Str("device_id", device.ID).Str("category", string(device.Configuration.Category)).Msg("device added")
	return &device, nil
}

// ImportDevices parses a bulk import and adds every valid row in one step.
// Rows whose id is already registered are skipped and reported. When no row
// survives nothing is added.
func (s *DeviceService) ImportDevices(ctx context.Context, actorID int, r io.Reader) (*ports.ImportResult, error) {
	parsed, err := importer.Parse(r)
	if err != nil {
		return nil, err
	}

	res := &ports.ImportResult{Skipped: parsed.Skipped}
	err = s.store.Write(func(st *store.Store) error {
		batch := make([]store.NewDevice, 0, len(parsed.Rows))
		for _, row := range parsed.Rows {
			if st.HasDevice(row.ID) {
				res.Skipped = append(res.Skipped, importer.Skip{Line: row.Line, Reason: "device " + row.ID + " already exists"})
				continue
			}
			batch = append(batch, store.NewDevice{
				ID:       row.ID,
				Name:     row.Name,
				Location: row.Location,
				Status:   domain.StatusOffline,
			})
		}
		if len(batch) == 0 {
			return &domain.ValidationError{Field: "file", Reason: "no valid devices found"}
		}
		added, err := st.AddDevices(batch)
		if err != nil {
			return err
		}
		res.Added = added
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import devices: %w", err)
	}

	for _, d := range res.Added {
		s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditDeviceAdded, ActorID: actorID, DeviceID: d.ID, Detail: "import"})
	}
	s.logger.Info().Int("added", len(res.Added)).Int("skipped", len(res.Skipped)).Msg("devices imported")
	return res, nil
}

func (s *DeviceService) GetDevice(_ context.Context, id string) (*domain.Device, error) {
	var device domain.Device
	err := s.store.Read(func(st *store.Store) error {
		var err error
		device, err = st.Device(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *DeviceService) ListDevices(_ context.Context, search string) ([]domain.Device, error) {
	var devices []domain.Device
	_ = s.store.Read(func(st *store.Store) error {
		devices = st.Devices(search)
		return nil
	})
	return devices, nil
}

func (s *DeviceService) UpdateConfig(ctx context.Context, actorID int, id string, patch domain.ConfigPatch) (*domain.Device, error) {
	if patch.Empty() {
		return nil, &domain.ValidationError{Field: "configuration", Reason: "no settings given"}
	}
	var device domain.Device
	err := s.store.Write(func(st *store.Store) error {
		var err error
		device, err = st.UpdateDeviceConfig(id, patch)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update config: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditConfigUpdated, ActorID: actorID, DeviceID: id})
	s.logger.Info().Str("device_id", id).Msg("device configuration updated")
	return &device, nil
}
