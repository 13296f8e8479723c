// internal/service/fee.go
package service

import "github.com/antohakim/gymtrack-backend/internal/model"

// Session fee schedule, in currency minor units.
const (
	BaseFeePremium  = 200000
	BaseFeeStandard = 150000

	StrengthSurcharge = 50000
	DefaultSurcharge  = 30000
)

// FeeQuote is the breakdown returned by the calculate endpoint and used
// as the fallback when an appointment has no persisted billing yet.
type FeeQuote struct {
	CustomerID     int     `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	MembershipType string  `json:"membership_type"`
	TrainerID      int     `json:"trainer_id"`
	TrainerName    string  `json:"trainer_name"`
	Specialty      string  `json:"trainer_specialty"`
	BaseFee        float64 `json:"base_fee"`
	SpecialtyFee   float64 `json:"specialty_fee"`
	TotalAmount    float64 `json:"total_amount"`
}

// CalculateFee derives the session fee from the membership tier and the
// trainer specialty. Pure: no I/O, no persistence, exactly four possible
// totals.
func CalculateFee(membershipType, specialty string) (base, surcharge, total float64) {
	base = BaseFeeStandard
	if membershipType == model.MembershipPremium {
		base = BaseFeePremium
	}
	surcharge = DefaultSurcharge
	if specialty == model.SpecialtyStrength {
		surcharge = StrengthSurcharge
	}
	return base, surcharge, base + surcharge
}

// QuoteFor assembles the full quote for a customer/trainer pair.
func QuoteFor(customer *model.Customer, trainer *model.Trainer) *FeeQuote {
	base, surcharge, total := CalculateFee(customer.MembershipType, trainer.Specialty)
	return &FeeQuote{
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		MembershipType: customer.MembershipType,
		TrainerID:      trainer.ID,
		TrainerName:    trainer.Name,
		Specialty:      trainer.Specialty,
		BaseFee:        base,
		SpecialtyFee:   surcharge,
		TotalAmount:    total,
	}
}
