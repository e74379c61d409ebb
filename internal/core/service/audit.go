package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// auditor stamps and forwards ledger entries. A failed write is logged and
// never fails the mutation that produced it.
type auditor struct {
	log    ports.AuditLog
	logger zerolog.Logger
}

func (a auditor) record(ctx context.Context, e domain.AuditEvent) {
	if a.log == nil {
		return
	}
	e.ID = uuid.NewString()
	e.At = time.Now().UTC()
	if err := a.log.Record(ctx, e); err != nil {
		a.logger.Warn().Err(err).
			Str("kind", string(e.Kind)).
			Str("device_id", e.DeviceID).
			Int("user_id", e.UserID).
			Msg("failed to record audit event")
	}
}
