package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
)

type AccessService struct {
	store  *store.Shared
	audit  auditor
	logger zerolog.Logger
}

func NewAccessService(st *store.Shared, audit ports.AuditLog, logger zerolog.Logger) *AccessService {
	return &AccessService{store: st, audit: auditor{log: audit, logger: logger}, logger: logger}
}

// Toggle flips the user's grant on the device.
func (s *AccessService) Toggle(ctx context.Context, actorID, userID int, deviceID string) (*domain.AccessRight, error) {
	var right domain.AccessRight
	err := s.store.Write(func(st *store.Store) error {
		var err error
		right, err = st.ToggleAccess(userID, deviceID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("toggle access: %w", err)
	}

	kind := domain.AuditAccessRevoked
	if right.Granted {
		kind = domain.AuditAccessGranted
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: kind, ActorID: actorID, UserID: userID, DeviceID: deviceID})
	s.logger.Info().Int("user_id", userID).Str("device_id", deviceID).Bool("granted", right.Granted).Msg("access toggled")
	return &right, nil
}

func (s *AccessService) Check(_ context.Context, userID int, deviceID string) (*ports.AccessStatus, error) {
	var status ports.AccessStatus
	err := s.store.Read(func(st *store.Store) error {
		if _, err := st.User(userID); err != nil {
			return err
		}
		if !st.HasDevice(deviceID) {
			return domain.DeviceNotFound(deviceID)
		}
		status = ports.AccessStatus{
			UserID:     userID,
			DeviceID:   deviceID,
			HasAccess:  st.HasAccess(userID, deviceID),
			Blocked:    st.IsBlocked(deviceID),
			CanOperate: st.CanOperate(userID, deviceID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Matrix lists every device with the user's grant flag, in device order.
func (s *AccessService) Matrix(_ context.Context, userID int) ([]ports.MatrixEntry, error) {
	var entries []ports.MatrixEntry
	err := s.store.Read(func(st *store.Store) error {
		if _, err := st.User(userID); err != nil {
			return err
		}
		for _, d := range st.Devices("") {
			entries = append(entries, ports.MatrixEntry{Device: d, Granted: st.HasAccess(userID, d.ID)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *AccessService) Rights(_ context.Context) ([]domain.AccessRight, error) {
	var rights []domain.AccessRight
	_ = s.store.Read(func(st *store.Store) error {
		rights = st.AccessRights()
		return nil
	})
	return rights, nil
}

func (s *AccessService) Unassigned(_ context.Context) ([]domain.Device, error) {
	var devices []domain.Device
	_ = s.store.Read(func(st *store.Store) error {
		devices = st.UnassignedDevices()
		return nil
	})
	return devices, nil
}

func (s *AccessService) DevicesForUser(_ context.Context, userID int) ([]domain.DeviceView, error) {
	var views []domain.DeviceView
	err := s.store.Read(func(st *store.Store) error {
		if _, err := st.User(userID); err != nil {
			return err
		}
		views = st.DevicesForUser(userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
