package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/service"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name           string
		membershipType string
		specialty      string
		wantBase       float64
		wantSurcharge  float64
		wantTotal      float64
	}{
		{"premium strength", "Premium", "Strength Training", 200000, 50000, 250000},
		{"premium other", "Premium", "Yoga", 200000, 30000, 230000},
		{"basic strength", "Basic", "Strength Training", 150000, 50000, 200000},
		{"basic other", "Basic", "Pilates", 150000, 30000, 180000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, surcharge, total := service.CalculateFee(tt.membershipType, tt.specialty)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantSurcharge, surcharge)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestCalculateFeeExactMatchOnly(t *testing.T) {
	// Specialty match is exact and case-sensitive.
	_, surcharge, _ := service.CalculateFee("Premium", "strength training")
	assert.Equal(t, float64(service.DefaultSurcharge), surcharge)

	// Any tier other than Premium pays the standard base.
	base, _, _ := service.CalculateFee("premium", "Yoga")
	assert.Equal(t, float64(service.BaseFeeStandard), base)
}

func TestQuoteFor(t *testing.T) {
	customer := &model.Customer{ID: 1, Name: "Giselle", MembershipType: "Premium"}
	trainer := &model.Trainer{ID: 2, Name: "Johnny", Specialty: "Strength Training"}

	quote := service.QuoteFor(customer, trainer)

	assert.Equal(t, 1, quote.CustomerID)
	assert.Equal(t, "Giselle", quote.CustomerName)
	assert.Equal(t, 2, quote.TrainerID)
	assert.Equal(t, float64(250000), quote.TotalAmount)
	assert.Equal(t, quote.BaseFee+quote.SpecialtyFee, quote.TotalAmount)
}
