package recyclingservice

import (
	"context"
	"database/sql"
	"ecotrack/database"
	"ecotrack/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	requestOutcomeConstraint = "recycling_records_disposal_request_key"
	certificateConstraint    = "recycling_records_certificate_number_key"
)

const recordColumns = `id, device_id, disposal_request_id, processed_by, recycling_partner,
	weight_kg, co2_saved_kg, materials_recovered, certificate_number, recycled_at, created_at`

// RequestRef is the part of a disposal request the ledger needs.
type RequestRef struct {
	DeviceID uuid.UUID             `db:"device_id"`
	Status   models.DisposalStatus `db:"status"`
}

type RecyclingRepository interface {
	Insert(ctx context.Context, tx sqlx.ExtContext, draft models.RecyclingDraft) (models.RecyclingRecord, error)
	Get(ctx context.Context, id uuid.UUID) (models.RecyclingRecord, error)
	List(ctx context.Context, filter models.RecyclingFilter) ([]models.RecyclingRecord, error)
	ImpactSummary(ctx context.Context) (models.ImpactSummary, error)
	RequestRef(ctx context.Context, q sqlx.QueryerContext, requestID uuid.UUID) (RequestRef, error)
}

type PostgresRecyclingRepository struct {
	DB *sqlx.DB
}

func NewRecyclingRepository(db *sqlx.DB) RecyclingRepository {
	return &PostgresRecyclingRepository{DB: db}
}

func (r *PostgresRecyclingRepository) Insert(ctx context.Context, tx sqlx.ExtContext, draft models.RecyclingDraft) (models.RecyclingRecord, error) {
	m := draft.Metrics
	materials := pq.StringArray(m.MaterialsRecovered)
	if materials == nil {
		materials = pq.StringArray{}
	}

	var rec models.RecyclingRecord
	err := sqlx.GetContext(ctx, tx, &rec, `
		INSERT INTO recycling_records (device_id, disposal_request_id, processed_by, recycling_partner,
			weight_kg, co2_saved_kg, materials_recovered, certificate_number, recycled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()))
		RETURNING `+recordColumns,
		draft.DeviceID, draft.DisposalRequestID, draft.ProcessedBy, m.RecyclingPartner,
		m.WeightKg, m.Co2SavedKg, materials, m.CertificateNumber, m.RecycledAt)
	switch {
	case database.UniqueViolation(err, requestOutcomeConstraint):
		return rec, errors.Wrapf(models.ErrDuplicateRecord, "outcome for request %s already recorded", draft.DisposalRequestID)
	case database.UniqueViolation(err, certificateConstraint):
		return rec, errors.Wrapf(models.ErrDuplicateRecord, "certificate %s already used", *m.CertificateNumber)
	case database.ForeignKeyViolation(err):
		return rec, errors.Wrapf(models.ErrNotFound, "device %s", draft.DeviceID)
	case err != nil:
		return rec, errors.Wrap(err, "failed to insert recycling record")
	}
	return rec, nil
}

func (r *PostgresRecyclingRepository) Get(ctx context.Context, id uuid.UUID) (models.RecyclingRecord, error) {
	var rec models.RecyclingRecord
	err := r.DB.GetContext(ctx, &rec, `SELECT `+recordColumns+` FROM recycling_records WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, errors.Wrapf(models.ErrNotFound, "recycling record %s", id)
	}
	if err != nil {
		return rec, errors.Wrap(err, "failed to fetch recycling record")
	}
	return rec, nil
}

func (r *PostgresRecyclingRepository) List(ctx context.Context, filter models.RecyclingFilter) ([]models.RecyclingRecord, error) {
	records := []models.RecyclingRecord{}
	err := r.DB.SelectContext(ctx, &records, `
		SELECT `+recordColumns+` FROM recycling_records
		WHERE ($1::uuid IS NULL OR device_id = $1)
		ORDER BY recycled_at DESC
		LIMIT $2 OFFSET $3
	`, filter.DeviceID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycling records")
	}
	return records, nil
}

func (r *PostgresRecyclingRepository) ImpactSummary(ctx context.Context) (models.ImpactSummary, error) {
	var summary models.ImpactSummary
	err := r.DB.GetContext(ctx, &summary, `
		SELECT
			COUNT(*)                        AS records,
			COALESCE(SUM(weight_kg), 0)     AS total_weight_kg,
			COALESCE(SUM(co2_saved_kg), 0)  AS total_co2_saved_kg
		FROM recycling_records
	`)
	if err != nil {
		return summary, errors.Wrap(err, "failed to summarize recycling impact")
	}
	return summary, nil
}

func (r *PostgresRecyclingRepository) RequestRef(ctx context.Context, q sqlx.QueryerContext, requestID uuid.UUID) (RequestRef, error) {
	if q == nil {
		q = r.DB
	}
	var ref RequestRef
	err := sqlx.GetContext(ctx, q, &ref, `SELECT device_id, status FROM disposal_requests WHERE id = $1`, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return ref, errors.Wrapf(models.ErrNotFound, "disposal request %s", requestID)
	}
	if err != nil {
		return ref, errors.Wrap(err, "failed to fetch disposal request")
	}
	return ref, nil
}
