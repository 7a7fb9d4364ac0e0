package deviceservice

import (
	"context"
	"ecotrack/models"
	"ecotrack/providers"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Ledger is the only writer of Device.status. It is used by the disposal
// workflow and the recycling ledger inside their transactions and is never
// exposed over HTTP.
type Ledger struct {
	repo   DeviceRepository
	logger providers.ZapLoggerProvider
}

func NewLedger(repo DeviceRepository, logger providers.ZapLoggerProvider) *Ledger {
	return &Ledger{repo: repo, logger: logger}
}

func (l *Ledger) Find(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.Device, error) {
	return l.repo.Get(ctx, q, id)
}

// SetStatus moves the device to next. An illegal edge fails with a
// TransitionError and writes nothing. A concurrent writer that changed the
// status between the read and the write yields ErrStaleState.
func (l *Ledger) SetStatus(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID, next models.DeviceStatus) error {
	device, err := l.repo.Get(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := device.Status.CheckTransition(next); err != nil {
		return err
	}
	if err := l.repo.CompareAndSetStatus(ctx, tx, id, device.Status, next); err != nil {
		return err
	}

	l.logger.GetLogger().Info("device status changed",
		zap.String("device_id", id.String()),
		zap.String("from", string(device.Status)),
		zap.String("to", string(next)))
	return nil
}
