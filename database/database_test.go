package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE devices`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := WithTx(ctx, db, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, `UPDATE devices SET name = 'x'`)
			return err
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		sentinel := errors.New("boom")
		err := WithTx(ctx, db, func(tx *sqlx.Tx) error { return sentinel })
		assert.ErrorIs(t, err, sentinel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = WithTx(ctx, db, func(tx *sqlx.Tx) error { panic("bad") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

		err := WithTx(ctx, db, func(tx *sqlx.Tx) error { return nil })
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})
}

func TestUniqueViolation(t *testing.T) {
	err := errors.Wrap(&pq.Error{Code: "23505", Constraint: "devices_serial_number_key"}, "insert")

	assert.True(t, UniqueViolation(err, "devices_serial_number_key"))
	assert.True(t, UniqueViolation(err, ""))
	assert.False(t, UniqueViolation(err, "other_key"))
	assert.False(t, UniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, UniqueViolation(errors.New("plain"), ""))
}

func TestForeignKeyViolation(t *testing.T) {
	assert.True(t, ForeignKeyViolation(errors.Wrap(&pq.Error{Code: "23503"}, "insert role")))
	assert.False(t, ForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, ForeignKeyViolation(nil))
}
