// internal/model/billing.go
package model

import "time"

// BillingStats is the aggregate view served by /billings/stats.
type BillingStats struct {
	TotalCount  int                 `json:"total_count"`
	TotalAmount float64             `json:"total_amount"`
	ByCustomer  []CustomerBillTotal `json:"by_customer"`
}

type CustomerBillTotal struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type Billing struct {
	ID           int       `db:"billing_id" json:"billing_id"`
	CustomerID   int       `db:"customer_id" json:"customer_id"`
	Amount       float64   `db:"amount" json:"amount"`
	CustomerName string    `db:"customer_name" json:"customer_name,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
