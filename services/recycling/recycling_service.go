package recyclingservice

import (
	"context"
	"ecotrack/database"
	"ecotrack/models"
	"ecotrack/providers"
	accessservice "ecotrack/services/access"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// DeviceStatusWriter moves a device along its lifecycle inside a transaction.
type DeviceStatusWriter interface {
	SetStatus(ctx context.Context, tx sqlx.ExtContext, id uuid.UUID, next models.DeviceStatus) error
}

type RecyclingService interface {
	RecordOutcome(ctx context.Context, tx sqlx.ExtContext, draft models.RecyclingDraft) (models.RecyclingRecord, error)
	RecordForRequest(ctx context.Context, actor models.Actor, requestID uuid.UUID, metrics models.RecyclingMetrics) (models.RecyclingRecord, error)
	Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.RecyclingRecord, error)
	List(ctx context.Context, actor models.Actor, filter models.RecyclingFilter) ([]models.RecyclingRecord, error)
	ImpactSummary(ctx context.Context, actor models.Actor) (models.ImpactSummary, error)
}

type recyclingServiceStruct struct {
	repo    RecyclingRepository
	devices DeviceStatusWriter
	gate    accessservice.Gate
	db      *sqlx.DB
	logger  providers.ZapLoggerProvider
}

func NewRecyclingService(repo RecyclingRepository, devices DeviceStatusWriter, gate accessservice.Gate, db *sqlx.DB, logger providers.ZapLoggerProvider) RecyclingService {
	return &recyclingServiceStruct{
		repo:    repo,
		devices: devices,
		gate:    gate,
		db:      db,
		logger:  logger,
	}
}

// RecordOutcome runs inside the caller's transaction. The record is inserted
// before the device moves, so a duplicate never touches device state.
func (s *recyclingServiceStruct) RecordOutcome(ctx context.Context, tx sqlx.ExtContext, draft models.RecyclingDraft) (models.RecyclingRecord, error) {
	metrics, err := draft.Metrics.Validate()
	if err != nil {
		return models.RecyclingRecord{}, err
	}
	draft.Metrics = metrics

	rec, err := s.repo.Insert(ctx, tx, draft)
	if err != nil {
		return models.RecyclingRecord{}, err
	}
	if err := s.devices.SetStatus(ctx, tx, draft.DeviceID, models.DeviceRecycled); err != nil {
		return models.RecyclingRecord{}, err
	}

	s.logger.GetLogger().Info("recycling outcome recorded",
		zap.String("record_id", rec.ID.String()),
		zap.String("device_id", draft.DeviceID.String()),
		zap.Float64("weight_kg", rec.WeightKg),
		zap.Float64("co2_saved_kg", rec.Co2SavedKg))
	return rec, nil
}

// RecordForRequest records the outcome of a request that was completed
// without metrics.
func (s *recyclingServiceStruct) RecordForRequest(ctx context.Context, actor models.Actor, requestID uuid.UUID, metrics models.RecyclingMetrics) (models.RecyclingRecord, error) {
	if err := s.gate.Authorize(actor, models.ActionCompleteDisposal, models.Resource{}); err != nil {
		return models.RecyclingRecord{}, err
	}

	var rec models.RecyclingRecord
	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		ref, err := s.repo.RequestRef(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if ref.Status != models.DisposalCompleted {
			return &models.TransitionError{Entity: "disposal request", From: string(ref.Status), To: "recycled"}
		}
		rec, err = s.RecordOutcome(ctx, tx, models.RecyclingDraft{
			DeviceID:          ref.DeviceID,
			DisposalRequestID: requestID,
			ProcessedBy:       actor.UserID,
			Metrics:           metrics,
		})
		return err
	})
	if err != nil {
		s.logger.GetLogger().Warn("recycling outcome not recorded", zap.String("request_id", requestID.String()), zap.Error(err))
		return models.RecyclingRecord{}, err
	}
	return rec, nil
}

func (s *recyclingServiceStruct) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (models.RecyclingRecord, error) {
	if err := s.gate.Authorize(actor, models.ActionReadRecycling, models.Resource{}); err != nil {
		return models.RecyclingRecord{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *recyclingServiceStruct) List(ctx context.Context, actor models.Actor, filter models.RecyclingFilter) ([]models.RecyclingRecord, error) {
	if err := s.gate.Authorize(actor, models.ActionReadRecycling, models.Resource{}); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *recyclingServiceStruct) ImpactSummary(ctx context.Context, actor models.Actor) (models.ImpactSummary, error) {
	if err := s.gate.Authorize(actor, models.ActionReadRecycling, models.Resource{}); err != nil {
		return models.ImpactSummary{}, err
	}
	return s.repo.ImpactSummary(ctx)
}
