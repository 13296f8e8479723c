package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

type TrainerUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	Specialty *string
}

type TrainerRepositoryInterface interface {
	ListAll() ([]model.Trainer, error)
	GetByID(id int) (*model.Trainer, error)
	Create(t *model.Trainer) error
	Update(id int, u TrainerUpdate) (*model.Trainer, error)
	Delete(id int) error
}

type TrainerRepository struct {
	DB *sql.DB
}

func (r *TrainerRepository) ListAll() ([]model.Trainer, error) {
	query := `
		SELECT trainer_id, name, email, phone, specialty
		FROM trainers
		ORDER BY trainer_id
	`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainers := []model.Trainer{}
	for rows.Next() {
		var t model.Trainer
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty); err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func (r *TrainerRepository) GetByID(id int) (*model.Trainer, error) {
	query := `
		SELECT trainer_id, name, email, phone, specialty
		FROM trainers
		WHERE trainer_id = $1
	`
	var t model.Trainer
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Trainer", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *TrainerRepository) Create(t *model.Trainer) error {
	query := `
		INSERT INTO trainers (name, email, phone, specialty)
		VALUES ($1, $2, $3, $4)
		RETURNING trainer_id
	`
	err := r.DB.QueryRow(query, t.Name, t.Email, t.Phone, t.Specialty).Scan(&t.ID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return appErrors.NewConflict("Trainer ID already exists")
	}
	return err
}

func (r *TrainerRepository) Update(id int, u TrainerUpdate) (*model.Trainer, error) {
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
	if u.Specialty != nil {
		addSet("specialty", *u.Specialty)
	}

	if len(setClauses) == 0 {
		return nil, appErrors.NewValidation("No valid fields to update")
	}

	values = append(values, id)
	query := fmt.Sprintf("UPDATE trainers SET %s WHERE trainer_id=$%d",
		joinClauses(setClauses), argPos)
	if _, err := r.DB.Exec(query, values...); err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *TrainerRepository) Delete(id int) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	_, err := r.DB.Exec(`DELETE FROM trainers WHERE trainer_id=$1`, id)
	return err
}

var _ TrainerRepositoryInterface = (*TrainerRepository)(nil)
