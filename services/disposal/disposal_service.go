package disposalservice

import (
	"context"
	"ecotrack/database"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DeviceLedger is the device status writer the workflow drives.
type DeviceLedger interface {
	Find(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.Device, error)
	SetStatus(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID, next models.DeviceStatus) error
}

// RecyclingLedger records the environmental outcome of a completed request.
type RecyclingLedger interface {
	RecordOutcome(ctx context.Context, tx sqlx.ExtContext, draft models.RecyclingDraft) (models.RecyclingRecord, error)
}

type DisposalService interface {
	Create(ctx context.Context, actor models.Actor, draft models.DisposalDraft) (models.DisposalRequest, error)
	Approve(ctx context.Context, actor models.Actor, id uuid.UUID, notes *string) (models.DisposalRequest, error)
	Reject(ctx context.Context, actor models.Actor, id uuid.UUID, notes *string) (models.DisposalRequest, error)
	Complete(ctx context.Context, actor models.Actor, id uuid.UUID, metrics *models.RecyclingMetrics) (models.DisposalRequest, *models.RecyclingRecord, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.DisposalRequest, error)
	List(ctx context.Context, actor models.Actor, filter models.DisposalFilter) ([]models.DisposalRequest, error)
}

type disposalServiceStruct struct {
	repo      DisposalRepository
	devices   DeviceLedger
	recycling RecyclingLedger
	gate      accessservice.Gate
	db        *sqlx.DB
	logger    providers.ZapLoggerProvider
	now       func() time.Time
}

func NewDisposalService(repo DisposalRepository, devices DeviceLedger, recycling RecyclingLedger, gate accessservice.Gate, db *sqlx.DB, logger providers.ZapLoggerProvider) DisposalService {
	return &disposalServiceStruct{
		repo:      repo,
		devices:   devices,
		recycling: recycling,
		gate:      gate,
		db:        db,
		logger:    logger,
		now:       time.Now,
	}
}

// Create opens a request and moves the device to pending_disposal in the
// same transaction.
func (s *disposalServiceStruct) Create(ctx context.Context, actor models.Actor, draft models.DisposalDraft) (models.DisposalRequest, error) {
	if err := s.gate.Authorize(actor, models.ActionCreateDisposal, models.OwnedBy(actor.UserID)); err != nil {
		return models.DisposalRequest{}, err
	}

	draft.Reason = strings.TrimSpace(draft.Reason)
	if draft.Reason == "" {
		return models.DisposalRequest{}, models.NewValidationError("reason", "is required")
	}
	priority, err := models.ParsePriority(string(draft.Priority))
	if err != nil {
		return models.DisposalRequest{}, err
	}
	draft.Priority = priority
	draft.RequestedBy = actor.UserID

	var created models.DisposalRequest
	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if _, err := s.devices.Find(ctx, tx, draft.DeviceID); err != nil {
			return err
		}
		open, err := s.repo.HasOpen(ctx, tx, draft.DeviceID)
		if err != nil {
			return err
		}
		if open {
			return errors.Wrapf(models.ErrConflictingRequest, "device %s already has an open request", draft.DeviceID)
		}
		if err := s.devices.SetStatus(ctx, tx, draft.DeviceID, models.DevicePendingDisposal); err != nil {
			return err
		}
		created, err = s.repo.Insert(ctx, tx, draft)
		return err
	})
	if err != nil {
		s.logger.GetLogger().Warn("disposal request not created",
			zap.String("device_id", draft.DeviceID.String()),
			zap.String("user_id", actor.UserID.String()),
			zap.Error(err))
		return models.DisposalRequest{}, err
	}

	s.logger.GetLogger().Info("disposal request created",
		zap.String("request_id", created.ID.String()),
		zap.String("device_id", created.DeviceID.String()),
		zap.String("priority", string(created.Priority)))
	return created, nil
}

// Approve leaves the device in pending_disposal.
func (s *disposalServiceStruct) Approve(ctx context.Context, actor models.Actor, id uuid.UUID, notes *string) (models.DisposalRequest, error) {
	return s.review(ctx, actor, id, models.DisposalApproved, notes)
}

// Reject returns the device to active.
func (s *disposalServiceStruct) Reject(ctx context.Context, actor models.Actor, id uuid.UUID, notes *string) (models.DisposalRequest, error) {
	return s.review(ctx, actor, id, models.DisposalRejected, notes)
}

func (s *disposalServiceStruct) review(ctx context.Context, actor models.Actor, id uuid.UUID, next models.DisposalStatus, notes *string) (models.DisposalRequest, error) {
	var updated models.DisposalRequest
	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		req, err := s.repo.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.gate.Authorize(actor, models.ActionReviewDisposal, models.OwnedBy(req.RequestedBy)); err != nil {
			return err
		}
		if err := req.Status.CheckTransition(next); err != nil {
			return err
		}

		reviewedAt := s.now()
		updated, err = s.repo.Transition(ctx, tx, models.DisposalTransition{
			ID:         id,
			From:       req.Status,
			To:         next,
			ApprovedBy: &actor.UserID,
			ApprovedAt: &reviewedAt,
			Notes:      notes,
		})
		if err != nil {
			return err
		}

		if next == models.DisposalRejected {
			return s.devices.SetStatus(ctx, tx, req.DeviceID, models.DeviceActive)
		}
		return nil
	})
	if err != nil {
		s.logger.GetLogger().Warn("disposal review failed",
			zap.String("request_id", id.String()),
			zap.String("to", string(next)),
			zap.Error(err))
		return models.DisposalRequest{}, err
	}

	s.logger.GetLogger().Info("disposal request reviewed",
		zap.String("request_id", id.String()),
		zap.String("status", string(updated.Status)),
		zap.String("reviewer", actor.UserID.String()))
	return updated, nil
}

// Complete closes an approved request and disposes the device. With metrics
// the outcome is recorded and the device ends recycled; without them the
// device rests at disposed until the outcome is recorded separately.
func (s *disposalServiceStruct) Complete(ctx context.Context, actor models.Actor, id uuid.UUID, metrics *models.RecyclingMetrics) (models.DisposalRequest, *models.RecyclingRecord, error) {
	var (
		updated models.DisposalRequest
		record  *models.RecyclingRecord
	)
	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		req, err := s.repo.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.gate.Authorize(actor, models.ActionCompleteDisposal, models.OwnedBy(req.RequestedBy)); err != nil {
			return err
		}
		if err := req.Status.CheckTransition(models.DisposalCompleted); err != nil {
			return err
		}

		updated, err = s.repo.Transition(ctx, tx, models.DisposalTransition{
			ID:   id,
			From: req.Status,
			To:   models.DisposalCompleted,
		})
		if err != nil {
			return err
		}
		if err := s.devices.SetStatus(ctx, tx, req.DeviceID, models.DeviceDisposed); err != nil {
			return err
		}
		if metrics == nil {
			return nil
		}

		rec, err := s.recycling.RecordOutcome(ctx, tx, models.RecyclingDraft{
			DeviceID:          req.DeviceID,
			DisposalRequestID: req.ID,
			ProcessedBy:       actor.UserID,
			Metrics:           *metrics,
		})
		if err != nil {
			return err
		}
		record = &rec
		return nil
	})
	if err != nil {
		s.logger.GetLogger().Warn("disposal completion failed", zap.String("request_id", id.String()), zap.Error(err))
		return models.DisposalRequest{}, nil, err
	}

	s.logger.GetLogger().Info("disposal request completed",
		zap.String("request_id", id.String()),
		zap.Bool("recycled", record != nil))
	return updated, record, nil
}

func (s *disposalServiceStruct) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.DisposalRequest, error) {
	req, err := s.repo.Get(ctx, nil, id)
	if err != nil {
		return models.DisposalRequest{}, err
	}
	if err := s.gate.Authorize(actor, models.ActionReadDisposal, models.OwnedBy(req.RequestedBy)); err != nil {
		return models.DisposalRequest{}, err
	}
	return req, nil
}

// List shows staff every request and everyone else only their own.
func (s *disposalServiceStruct) List(ctx context.Context, actor models.Actor, filter models.DisposalFilter) ([]models.DisposalRequest, error) {
	if err := s.gate.Authorize(actor, models.ActionReadDisposal, models.OwnedBy(actor.UserID)); err != nil {
		return nil, err
	}
	if !actor.IsStaff() {
		filter.RequestedBy = &actor.UserID
	}
	return s.repo.List(ctx, filter)
}
