package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

var billingCols = []string{"billing_id", "customer_id", "amount", "customer_name", "created_at"}

func billingRow(id int) *sqlmock.Rows {
	return sqlmock.NewRows(billingCols).
		AddRow(id, 1, 250000.0, "Giselle", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
}

func newBillingRepo(t *testing.T) (*repository.BillingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &repository.BillingRepository{DB: db}, mock
}

func TestBillingGetByIDNotFound(t *testing.T) {
	repo, mock := newBillingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM billings b").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(42)

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Billing record with ID 42 not found", err.Error())
}

func TestReplaceAppointmentLinksSingleTransaction(t *testing.T) {
	repo, mock := newBillingRepo(t)

	// Clear-then-set must run inside one transaction.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE appointments SET billing_id = NULL WHERE billing_id`).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE appointments SET billing_id = \$1 WHERE appointment_id = ANY`).
		WithArgs(10, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceAppointmentLinks(10, []int{1, 3})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAppointmentLinksEmptySetOnlyClears(t *testing.T) {
	repo, mock := newBillingRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE appointments SET billing_id = NULL WHERE billing_id`).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceAppointmentLinks(10, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingDeleteUnlinksDependents(t *testing.T) {
	repo, mock := newBillingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM billings b").
		WithArgs(10).
		WillReturnRows(billingRow(10))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE appointments SET billing_id = NULL WHERE billing_id`).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM billings WHERE billing_id`).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingStats(t *testing.T) {
	repo, mock := newBillingRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM billings`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM billings`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(680000.0))
	mock.ExpectQuery("SELECT c.name, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"name", "count", "total"}).
			AddRow("Giselle", 2, 500000.0).
			AddRow("Winter", 1, 180000.0))

	stats, err := repo.Stats()

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, 680000.0, stats.TotalAmount)
	require.Len(t, stats.ByCustomer, 2)
	assert.Equal(t, "Giselle", stats.ByCustomer[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingUpdateEmptyFieldSet(t *testing.T) {
	repo, mock := newBillingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM billings b").
		WithArgs(10).
		WillReturnRows(billingRow(10))

	_, err := repo.Update(10, repository.BillingUpdate{})

	var validation *appErrors.ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
