package deviceservice

import (
	"context"
	"ecotrack/database"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type DeviceService interface {
	Register(ctx context.Context, actor models.Actor, draft models.DeviceDraft) (models.Device, error)
	UpdateFields(ctx context.Context, actor models.Actor, id uuid.UUID, patch models.DevicePatch) (models.Device, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.Device, error)
	List(ctx context.Context, actor models.Actor, filter models.DeviceFilter) ([]models.Device, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	StatusSummary(ctx context.Context, actor models.Actor) ([]models.DeviceStatusCount, error)
}

type deviceServiceStruct struct {
	repo   DeviceRepository
	gate   accessservice.Gate
	db     *sqlx.DB
	logger providers.ZapLoggerProvider
}

func NewDeviceService(repo DeviceRepository, gate accessservice.Gate, db *sqlx.DB, logger providers.ZapLoggerProvider) DeviceService {
	return &deviceServiceStruct{repo: repo, gate: gate, db: db, logger: logger}
}

// Register creates a device in the active state. Callers cannot choose the
// initial status.
func (s *deviceServiceStruct) Register(ctx context.Context, actor models.Actor, draft models.DeviceDraft) (models.Device, error) {
	if err := s.gate.Authorize(actor, models.ActionCreateDevice, models.Resource{}); err != nil {
		return models.Device{}, err
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Type = strings.TrimSpace(draft.Type)
	if draft.Name == "" {
		return models.Device{}, models.NewValidationError("name", "is required")
	}
	if draft.Type == "" {
		return models.Device{}, models.NewValidationError("type", "is required")
	}
	draft.SerialNumber = blankToNil(draft.SerialNumber)
	draft.AddedBy = actor.UserID

	device, err := s.repo.Insert(ctx, draft)
	if err != nil {
		s.logger.GetLogger().Error("failed to register device", zap.Error(err))
		return models.Device{}, err
	}
	s.logger.GetLogger().Info("device registered",
		zap.String("device_id", device.ID.String()),
		zap.String("added_by", actor.UserID.String()))
	return device, nil
}

func (s *deviceServiceStruct) UpdateFields(ctx context.Context, actor models.Actor, id uuid.UUID, patch models.DevicePatch) (models.Device, error) {
	if err := s.gate.Authorize(actor, models.ActionEditDevice, models.Resource{}); err != nil {
		return models.Device{}, err
	}
	if patch.Empty() {
		return models.Device{}, models.NewValidationError("", "no fields to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Device{}, models.NewValidationError("name", "must not be blank")
	}
	if patch.Type != nil && strings.TrimSpace(*patch.Type) == "" {
		return models.Device{}, models.NewValidationError("type", "must not be blank")
	}
	patch.SerialNumber = blankToNil(patch.SerialNumber)

	device, err := s.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		return models.Device{}, err
	}
	s.logger.GetLogger().Info("device updated", zap.String("device_id", id.String()))
	return device, nil
}

func (s *deviceServiceStruct) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.Device, error) {
	if err := s.gate.Authorize(actor, models.ActionReadDevice, models.Resource{}); err != nil {
		return models.Device{}, err
	}
	return s.repo.Get(ctx, nil, id)
}

func (s *deviceServiceStruct) List(ctx context.Context, actor models.Actor, filter models.DeviceFilter) ([]models.Device, error) {
	if err := s.gate.Authorize(actor, models.ActionReadDevice, models.Resource{}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Delete removes a device with its closed requests and recycling records.
// A device with an open request must be resolved through the workflow first.
func (s *deviceServiceStruct) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.gate.Authorize(actor, models.ActionDeleteDevice, models.Resource{}); err != nil {
		return err
	}

	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.repo.LockForUpdate(ctx, tx, id); err != nil {
			return err
		}
		open, err := s.repo.HasOpenRequest(ctx, tx, id)
		if err != nil {
			return err
		}
		if open {
			return errors.Wrapf(models.ErrConflictingRequest, "device %s has an open disposal request", id)
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.logger.GetLogger().Info("device deleted",
		zap.String("device_id", id.String()),
		zap.String("by", actor.UserID.String()))
	return nil
}

func (s *deviceServiceStruct) StatusSummary(ctx context.Context, actor models.Actor) ([]models.DeviceStatusCount, error) {
	if err := s.gate.Authorize(actor, models.ActionReadDevice, models.Resource{}); err != nil {
		return nil, err
	}
	return s.repo.CountByStatus(ctx)
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
