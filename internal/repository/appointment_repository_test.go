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

var appointmentCols = []string{"appointment_id", "customer_id", "trainer_id", "booking_date", "status", "billing_id"}

func appointmentRow(id int) *sqlmock.Rows {
	return sqlmock.NewRows(appointmentCols).
		AddRow(id, 1, 2, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), "scheduled", nil)
}

func newAppointmentRepo(t *testing.T) (*repository.AppointmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &repository.AppointmentRepository{DB: db}, mock
}

func TestAppointmentGetByIDNotFound(t *testing.T) {
	repo, mock := newAppointmentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE appointment_id").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(42)

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Appointment with ID 42 not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateEmptyFieldSet(t *testing.T) {
	repo, mock := newAppointmentRepo(t)

	// Existence is checked first; with no recognized fields no UPDATE
	// statement may reach the store.
	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE appointment_id").
		WithArgs(5).
		WillReturnRows(appointmentRow(5))

	_, err := repo.Update(5, repository.AppointmentUpdate{})

	var validation *appErrors.ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateMissingTarget(t *testing.T) {
	repo, mock := newAppointmentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE appointment_id").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	status := "completed"
	_, err := repo.Update(42, repository.AppointmentUpdate{Status: &status})

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateSparseFields(t *testing.T) {
	repo, mock := newAppointmentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE appointment_id").
		WithArgs(5).
		WillReturnRows(appointmentRow(5))

	// Only the provided field appears in the SET clause.
	mock.ExpectExec(`UPDATE appointments SET status=\$1 WHERE appointment_id=\$2`).
		WithArgs("completed", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE appointment_id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(appointmentCols).
			AddRow(5, 1, 2, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), "completed", nil))

	status := "completed"
	updated, err := repo.Update(5, repository.AppointmentUpdate{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentListByCustomer(t *testing.T) {
	repo, mock := newAppointmentRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE customer_id").
		WithArgs(1).
		WillReturnRows(appointmentRow(5))

	appointments, err := repo.ListByCustomer(1)

	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, 5, appointments[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
