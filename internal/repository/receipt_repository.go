package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

type ReceiptRepositoryInterface interface {
	Create(rc *model.Receipt) error
	GetByID(id int) (*model.Receipt, error)
	UpdateStatus(id int, status, lastError string) error
	UpdateContent(id int, content string) error
}

type ReceiptRepository struct {
	DB *sql.DB
}

// Create inserts a pending receipt for a freshly created billing.
func (r *ReceiptRepository) Create(rc *model.Receipt) error {
	now := time.Now()
	rc.CreatedAt = now
	rc.UpdatedAt = now
	if rc.Status == "" {
		rc.Status = "pending"
	}
	query := `
		INSERT INTO receipts (billing_id, customer_id, status, rendered_content, last_error, retry_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING receipt_id
	`
	return r.DB.QueryRow(
		query,
		rc.BillingID,
		rc.CustomerID,
		rc.Status,
		rc.RenderedContent,
		rc.LastError,
		rc.RetryCount,
		rc.CreatedAt,
		rc.UpdatedAt,
	).Scan(&rc.ID)
}

func (r *ReceiptRepository) GetByID(id int) (*model.Receipt, error) {
	query := `
		SELECT receipt_id, billing_id, customer_id, status, rendered_content, last_error, retry_count, created_at, updated_at
		FROM receipts
		WHERE receipt_id=$1
	`
	var rc model.Receipt
	err := r.DB.QueryRow(query, id).Scan(
		&rc.ID, &rc.BillingID, &rc.CustomerID, &rc.Status,
		&rc.RenderedContent, &rc.LastError, &rc.RetryCount,
		&rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("Receipt", id)
		}
		return nil, err
	}
	return &rc, nil
}

func (r *ReceiptRepository) UpdateStatus(id int, status, lastError string) error {
	query := `UPDATE receipts SET status=$1, last_error=$2, retry_count=retry_count+1, updated_at=NOW() WHERE receipt_id=$3`
	_, err := r.DB.Exec(query, status, lastError, id)
	return err
}

func (r *ReceiptRepository) UpdateContent(id int, content string) error {
	query := `UPDATE receipts SET rendered_content=$1, updated_at=NOW() WHERE receipt_id=$2`
	_, err := r.DB.Exec(query, content, id)
	return err
}

var _ ReceiptRepositoryInterface = (*ReceiptRepository)(nil)
