package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

type AppointmentUpdate struct {
	CustomerID  *int
	TrainerID   *int
	BookingDate *time.Time
	Status      *string
	BillingID   *int
}

// Empty reports whether the payload carried no recognized field.
func (u AppointmentUpdate) Empty() bool {
	return u.CustomerID == nil && u.TrainerID == nil && u.BookingDate == nil &&
		u.Status == nil && u.BillingID == nil
}

type AppointmentRepositoryInterface interface {
	ListAll() ([]model.Appointment, error)
	ListByCustomer(customerID int) ([]model.Appointment, error)
	ListByTrainer(trainerID int) ([]model.Appointment, error)
	ListByBilling(billingID int) ([]model.Appointment, error)
	GetByID(id int) (*model.Appointment, error)
	Create(a *model.Appointment) error
	Update(id int, u AppointmentUpdate) (*model.Appointment, error)
	Delete(id int) error
}

type AppointmentRepository struct {
	DB *sql.DB
}

const appointmentColumns = `appointment_id, customer_id, trainer_id, booking_date, status, billing_id`

func scanAppointment(row interface{ Scan(...interface{}) error }) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(&a.ID, &a.CustomerID, &a.TrainerID, &a.BookingDate, &a.Status, &a.BillingID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) listWhere(condition string, args ...interface{}) ([]model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if condition != "" {
		query += " WHERE " + condition
	}
	query += " ORDER BY appointment_id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []model.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	return appointments, rows.Err()
}

func (r *AppointmentRepository) ListAll() ([]model.Appointment, error) {
	return r.listWhere("")
}

func (r *AppointmentRepository) ListByCustomer(customerID int) ([]model.Appointment, error) {
	return r.listWhere("customer_id=$1", customerID)
}

func (r *AppointmentRepository) ListByTrainer(trainerID int) ([]model.Appointment, error) {
	return r.listWhere("trainer_id=$1", trainerID)
}

func (r *AppointmentRepository) ListByBilling(billingID int) ([]model.Appointment, error) {
	return r.listWhere("billing_id=$1", billingID)
}

func (r *AppointmentRepository) GetByID(id int) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE appointment_id=$1`
	a, err := scanAppointment(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Appointment", id)
		}
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Create(a *model.Appointment) error {
	query := `
		INSERT INTO appointments (customer_id, trainer_id, booking_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING appointment_id
	`
	return r.DB.QueryRow(query, a.CustomerID, a.TrainerID, a.BookingDate, a.Status).Scan(&a.ID)
}

func (r *AppointmentRepository) Update(id int, u AppointmentUpdate) (*model.Appointment, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	setClauses := []string{}
	values := []interface{}{}
	argPos := 1

	addSet := func(column string, v interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s=$%d", column, argPos))
		values = append(values, v)
		argPos++
	}

	if u.CustomerID != nil {
		addSet("customer_id", *u.CustomerID)
	}
	if u.TrainerID != nil {
		addSet("trainer_id", *u.TrainerID)
	}
	if u.BookingDate != nil {
		addSet("booking_date", *u.BookingDate)
	}
	if u.Status != nil {
		addSet("status", *u.Status)
	}
	if u.BillingID != nil {
		addSet("billing_id", *u.BillingID)
	}

	if len(setClauses) == 0 {
		return nil, appErrors.NewValidation("No valid fields to update")
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE appointments SET %s WHERE appointment_id=$%d",
		joinClauses(setClauses), argPos)
	if _, err := r.DB.Exec(query, values...); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *AppointmentRepository) Delete(id int) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	_, err := r.DB.Exec(`DELETE FROM appointments WHERE appointment_id=$1`, id)
	return err
}

var _ AppointmentRepositoryInterface = (*AppointmentRepository)(nil)
