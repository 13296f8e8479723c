package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

// CustomerUpdate carries the sparse fields of a partial update.
// A nil field was absent from the payload and keeps its prior value.
type CustomerUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	MembershipType *string
}

// CustomerRepositoryInterface defines methods used by controllers
type CustomerRepositoryInterface interface {
	ListAll() ([]model.Customer, error)
	GetByID(id int) (*model.Customer, error)
	Create(c *model.Customer) error
	Update(id int, u CustomerUpdate) (*model.Customer, error)
	Delete(id int) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, membership_type
		FROM customers
		ORDER BY customer_id
	`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.MembershipType); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, membership_type
		FROM customers
		WHERE customer_id = $1
	`
	var c model.Customer
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.MembershipType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Customer", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *model.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, membership_type)
		VALUES ($1, $2, $3, $4)
		RETURNING customer_id
	`
	err := r.DB.QueryRow(query, c.Name, c.Email, c.Phone, c.MembershipType).Scan(&c.ID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return appErrors.NewConflict("Customer ID already exists")
	}
	return err
}

// Update applies only the fields present in u. The target is checked
// first so a missing customer reports not-found before an empty payload
// reports validation.
func (r *CustomerRepository) Update(id int, u CustomerUpdate) (*model.Customer, error) {
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

	if u.Name != nil {
		addSet("name", *u.Name)
	}
	if u.Email != nil {
		addSet("email", *u.Email)
	}
	if u.Phone != nil {
		addSet("phone", *u.Phone)
	}
	if u.MembershipType != nil {
		addSet("membership_type", *u.MembershipType)
	}

	if len(setClauses) == 0 {
		return nil, appErrors.NewValidation("No valid fields to update")
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE customers SET %s WHERE customer_id=$%d",
		joinClauses(setClauses), argPos)
	if _, err := r.DB.Exec(query, values...); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *CustomerRepository) Delete(id int) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	_, err := r.DB.Exec(`DELETE FROM customers WHERE customer_id=$1`, id)
	return err
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
