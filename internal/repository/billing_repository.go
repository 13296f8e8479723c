package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

type BillingUpdate struct {
	CustomerID *int
	Amount     *float64
}

func (u BillingUpdate) Empty() bool {
	return u.CustomerID == nil && u.Amount == nil
}

type BillingRepositoryInterface interface {
	ListAll() ([]model.Billing, error)
	ListByCustomer(customerID int) ([]model.Billing, error)
	GetByID(id int) (*model.Billing, error)
	Create(b *model.Billing) error
	Update(id int, u BillingUpdate) (*model.Billing, error)
	// ReplaceAppointmentLinks clears billing_id on every appointment
	// currently linked to billingID, then sets it on exactly the given
	// appointments. Both phases run in one transaction.
	ReplaceAppointmentLinks(billingID int, appointmentIDs []int) error
	// Delete unlinks dependent appointments and removes the billing row
	// in one transaction.
	Delete(id int) error
	Stats() (*model.BillingStats, error)
}

type BillingRepository struct {
	DB *sql.DB
}

const billingSelect = `
		SELECT b.billing_id, b.customer_id, b.amount, COALESCE(c.name, '') AS customer_name, b.created_at
		FROM billings b
		LEFT JOIN customers c ON b.customer_id = c.customer_id`

func (r *BillingRepository) listWhere(condition string, args ...interface{}) ([]model.Billing, error) {
	query := billingSelect
	if condition != "" {
		query += " WHERE " + condition
	}
	query += " ORDER BY b.billing_id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	billings := []model.Billing{}
	for rows.Next() {
		var b model.Billing
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.Amount, &b.CustomerName, &b.CreatedAt); err != nil {
			return nil, err
		}
		billings = append(billings, b)
	}
	return billings, rows.Err()
}

func (r *BillingRepository) ListAll() ([]model.Billing, error) {
	return r.listWhere("")
}

func (r *BillingRepository) ListByCustomer(customerID int) ([]model.Billing, error) {
	return r.listWhere("b.customer_id=$1", customerID)
}

func (r *BillingRepository) GetByID(id int) (*model.Billing, error) {
	var b model.Billing
	err := r.DB.QueryRow(billingSelect+" WHERE b.billing_id=$1", id).
		Scan(&b.ID, &b.CustomerID, &b.Amount, &b.CustomerName, &b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Billing record", id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BillingRepository) Create(b *model.Billing) error {
	b.CreatedAt = time.Now()
	query := `
		INSERT INTO billings (customer_id, amount, created_at)
		VALUES ($1, $2, $3)
		RETURNING billing_id
	`
	err := r.DB.QueryRow(query, b.CustomerID, b.Amount, b.CreatedAt).Scan(&b.ID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return appErrors.NewConflict("Billing ID already exists")
	}
	return err
}

func (r *BillingRepository) Update(id int, u BillingUpdate) (*model.Billing, error) {
	if _, err := r.GetByID(id); err != nil {
		return nil, err
	}

	setClauses := []string{}
	values := []interface{}{}
	argPos := 1

	if u.CustomerID != nil {
		setClauses = append(setClauses, fmt.Sprintf("customer_id=$%d", argPos))
		values = append(values, *u.CustomerID)
		argPos++
	}
	if u.Amount != nil {
		setClauses = append(setClauses, fmt.Sprintf("amount=$%d", argPos))
		values = append(values, *u.Amount)
		argPos++
	}

	if len(setClauses) == 0 {
		return nil, appErrors.NewValidation("No valid fields to update")
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE billings SET %s WHERE billing_id=$%d",
		joinClauses(setClauses), argPos)
	if _, err := r.DB.Exec(query, values...); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *BillingRepository) ReplaceAppointmentLinks(billingID int, appointmentIDs []int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE appointments SET billing_id = NULL WHERE billing_id = $1`, billingID); err != nil {
		return err
	}
	if len(appointmentIDs) > 0 {
		if _, err := tx.Exec(
			`UPDATE appointments SET billing_id = $1 WHERE appointment_id = ANY($2)`,
			billingID, pq.Array(appointmentIDs)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *BillingRepository) Delete(id int) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE appointments SET billing_id = NULL WHERE billing_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM billings WHERE billing_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *BillingRepository) Stats() (*model.BillingStats, error) {
	stats := &model.BillingStats{ByCustomer: []model.CustomerBillTotal{}}

	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM billings`).Scan(&stats.TotalCount); err != nil {
		return nil, err
	}
	if err := r.DB.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM billings`).Scan(&stats.TotalAmount); err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT c.name, COUNT(b.billing_id) AS count, SUM(b.amount) AS total
		FROM billings b
		JOIN customers c ON b.customer_id = c.customer_id
		GROUP BY b.customer_id, c.name
		ORDER BY total DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s model.CustomerBillTotal
		if err := rows.Scan(&s.Name, &s.Count, &s.Total); err != nil {
			return nil, err
		}
		stats.ByCustomer = append(stats.ByCustomer, s)
	}
	return stats, rows.Err()
}

var _ BillingRepositoryInterface = (*BillingRepository)(nil)
