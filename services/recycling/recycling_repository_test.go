package recyclingservice

import (
	"context"
	"ecotrack/models"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordRowColumns = []string{
	"id", "device_id", "disposal_request_id", "processed_by", "recycling_partner",
	"weight_kg", "co2_saved_kg", "materials_recovered", "certificate_number", "recycled_at", "created_at",
}

func newRecyclingRepo(t *testing.T) (*PostgresRecyclingRepository, *sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	sqlxDB := sqlx.NewDb(db, "postgres")
	return &PostgresRecyclingRepository{DB: sqlxDB}, sqlxDB, mock
}

func recordRow(id, deviceID, requestID uuid.UUID, weight, co2 float64) *sqlmock.Rows {
	at := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(recordRowColumns).
		AddRow(id.String(), deviceID.String(), requestID.String(), nil, nil, weight, co2, "{aluminum,copper}", nil, at, at)
}

func TestInsertRecord(t *testing.T) {
	ctx := context.Background()
	cert := "CERT-7"
	draft := models.RecyclingDraft{
		DeviceID:          uuid.New(),
		DisposalRequestID: uuid.New(),
		ProcessedBy:       uuid.New(),
		Metrics:           models.RecyclingMetrics{WeightKg: 12.5, Co2SavedKg: 8, CertificateNumber: &cert},
	}

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "inserts record",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO recycling_records .* COALESCE\(\$9, now\(\)\)`).
					WithArgs(draft.DeviceID, draft.DisposalRequestID, draft.ProcessedBy, nil, 12.5, 8.0, pq.StringArray{}, cert, nil).
					WillReturnRows(recordRow(uuid.New(), draft.DeviceID, draft.DisposalRequestID, 12.5, 8))
			},
		},
		{
			name: "request already has an outcome",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO recycling_records`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "recycling_records_disposal_request_key"})
			},
			expectedErr: models.ErrDuplicateRecord,
		},
		{
			name: "certificate reused",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO recycling_records`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "recycling_records_certificate_number_key"})
			},
			expectedErr: models.ErrDuplicateRecord,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, db, mock := newRecyclingRepo(t)
			tc.mockSetup(mock)

			rec, err := repo.Insert(ctx, db, draft)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 12.5, rec.WeightKg)
				assert.Equal(t, []string{"aluminum", "copper"}, []string(rec.MaterialsRecovered))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestImpactSummary(t *testing.T) {
	repo, _, mock := newRecyclingRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS records, COALESCE\(SUM\(weight_kg\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"records", "total_weight_kg", "total_co2_saved_kg"}).AddRow(2, 20.5, 11.0))

	summary, err := repo.ImpactSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ImpactSummary{Records: 2, TotalWeight: 20.5, TotalCo2: 11}, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRef(t *testing.T) {
	ctx := context.Background()
	repo, _, mock := newRecyclingRepo(t)
	requestID, deviceID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT device_id, status FROM disposal_requests WHERE id = \$1`).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "status"}).AddRow(deviceID.String(), "completed"))
	ref, err := repo.RequestRef(ctx, nil, requestID)
	require.NoError(t, err)
	assert.Equal(t, RequestRef{DeviceID: deviceID, Status: models.DisposalCompleted}, ref)

	mock.ExpectQuery(`SELECT device_id, status FROM disposal_requests`).
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "status"}))
	_, err = repo.RequestRef(ctx, nil, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecords(t *testing.T) {
	repo, _, mock := newRecyclingRepo(t)
	deviceID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM recycling_records WHERE \(\$1::uuid IS NULL OR device_id = \$1\)`).
		WithArgs(deviceID, 10, 0).
		WillReturnRows(recordRow(uuid.New(), deviceID, uuid.New(), 3, 1.5))

	records, err := repo.List(context.Background(), models.RecyclingFilter{DeviceID: &deviceID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, deviceID, records[0].DeviceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
