// internal/model/appointment.go
package model

import "time"

type Appointment struct {
	ID          int       `db:"appointment_id" json:"appointment_id"`
	CustomerID  int       `db:"customer_id" json:"customer_id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	BookingDate time.Time `db:"booking_date" json:"booking_date"`
	Status      string    `db:"status" json:"status"` // e.g. scheduled, completed, cancelled
	BillingID   *int      `db:"billing_id" json:"billing_id,omitempty"`
}
