package disposalservice

import (
	"context"
	"database/sql"
	"ecotrack/database"
	"ecotrack/models"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const openRequestConstraint = "disposal_requests_open_device_key"

const requestColumns = `id, device_id, requested_by, reason, priority, status,
	approved_by, approved_at, notes, created_at, updated_at`

type DisposalRepository interface {
	Insert(ctx context.Context, tx sqlx.ExtContext, draft models.DisposalDraft) (models.DisposalRequest, error)
	Get(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.DisposalRequest, error)
	List(ctx context.Context, filter models.DisposalFilter) ([]models.DisposalRequest, error)
	HasOpen(ctx context.Context, q sqlx.QueryerContext, deviceID uuid.UUID) (bool, error)
	Transition(ctx context.Context, tx sqlx.ExtContext, t models.DisposalTransition) (models.DisposalRequest, error)
}

type PostgresDisposalRepository struct {
	DB *sqlx.DB
}

func NewDisposalRepository(db *sqlx.DB) DisposalRepository {
	return &PostgresDisposalRepository{DB: db}
}

// Insert relies on the partial unique index to reject a second open request
// for the same device.
func (r *PostgresDisposalRepository) Insert(ctx context.Context, tx sqlx.ExtContext, draft models.DisposalDraft) (models.DisposalRequest, error) {
	var req models.DisposalRequest
	err := sqlx.GetContext(ctx, tx, &req, `
		INSERT INTO disposal_requests (device_id, requested_by, reason, priority, status, notes)
		VALUES ($1, $2, $3, $4, 'pending', $5)
		RETURNING `+requestColumns,
		draft.DeviceID, draft.RequestedBy, draft.Reason, draft.Priority, draft.Notes)
	if database.UniqueViolation(err, openRequestConstraint) {
		return req, errors.Wrapf(models.ErrConflictingRequest, "device %s already has an open request", draft.DeviceID)
	}
	if database.ForeignKeyViolation(err) {
		return req, errors.Wrapf(models.ErrNotFound, "device %s", draft.DeviceID)
	}
	if err != nil {
		return req, errors.Wrap(err, "failed to insert disposal request")
	}
	return req, nil
}

func (r *PostgresDisposalRepository) Get(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID) (models.DisposalRequest, error) {
	if q == nil {
		q = r.DB
	}
	var req models.DisposalRequest
	err := sqlx.GetContext(ctx, q, &req, `SELECT `+requestColumns+` FROM disposal_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return req, errors.Wrapf(models.ErrNotFound, "disposal request %s", id)
	}
	if err != nil {
		return req, errors.Wrap(err, "failed to fetch disposal request")
	}
	return req, nil
}

func (r *PostgresDisposalRepository) List(ctx context.Context, filter models.DisposalFilter) ([]models.DisposalRequest, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conds = append(conds, "status = ANY("+arg(pq.StringArray(statuses))+"::disposal_status[])")
	}
	if filter.Priority != "" {
		conds = append(conds, "priority = "+arg(filter.Priority))
	}
	if filter.DeviceID != nil {
		conds = append(conds, "device_id = "+arg(*filter.DeviceID))
	}
	if filter.RequestedBy != nil {
		conds = append(conds, "requested_by = "+arg(*filter.RequestedBy))
	}

	query := `SELECT ` + requestColumns + ` FROM disposal_requests`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	requests := []models.DisposalRequest{}
	if err := r.DB.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list disposal requests")
	}
	return requests, nil
}

func (r *PostgresDisposalRepository) HasOpen(ctx context.Context, q sqlx.QueryerContext, deviceID uuid.UUID) (bool, error) {
	if q == nil {
		q = r.DB
	}
	var open bool
	err := sqlx.GetContext(ctx, q, &open, `
		SELECT EXISTS (
			SELECT 1 FROM disposal_requests
			WHERE device_id = $1 AND status IN ('pending', 'approved')
		)
	`, deviceID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check open requests")
	}
	return open, nil
}

// Transition applies t only while the stored status still equals t.From.
func (r *PostgresDisposalRepository) Transition(ctx context.Context, tx sqlx.ExtContext, t models.DisposalTransition) (models.DisposalRequest, error) {
	var req models.DisposalRequest
	err := sqlx.GetContext(ctx, tx, &req, `
		UPDATE disposal_requests SET
			status      = $3,
			approved_by = COALESCE($4, approved_by),
			approved_at = COALESCE($5, approved_at),
			notes       = COALESCE($6, notes),
			updated_at  = now()
		WHERE id = $1 AND status = $2
		RETURNING `+requestColumns,
		t.ID, t.From, t.To, t.ApprovedBy, t.ApprovedAt, t.Notes)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return req, errors.Wrap(err, "failed to update disposal request")
	}

	var exists bool
	if err := sqlx.GetContext(ctx, tx, &exists, `SELECT EXISTS (SELECT 1 FROM disposal_requests WHERE id = $1)`, t.ID); err != nil {
		return req, errors.Wrap(err, "failed to check disposal request")
	}
	if !exists {
		return req, errors.Wrapf(models.ErrNotFound, "disposal request %s", t.ID)
	}
	return req, errors.Wrapf(models.ErrStaleState, "disposal request %s is no longer %s", t.ID, t.From)
}
