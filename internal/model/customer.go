// internal/model/customer.go
package model

// MembershipPremium is the membership tier that pays the higher base fee.
const MembershipPremium = "Premium"

type Customer struct {
	ID             int    `db:"customer_id" json:"customer_id"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	MembershipType string `db:"membership_type" json:"membership_type"` // Basic or Premium
}
