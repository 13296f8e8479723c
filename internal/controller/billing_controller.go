// internal/controller/billing_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
	"github.com/antohakim/gymtrack-backend/internal/service"
)

type BillingController struct {
	Service *service.BillingService
}

func (c *BillingController) List(w http.ResponseWriter, r *http.Request) {
	billings, err := c.Service.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billings)
}

func (c *BillingController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	details, err := c.Service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (c *BillingController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	billings, err := c.Service.ListByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billings)
}

// GetByAppointment serves the appointment/billing composite. Peer
// enrichment is partial-success; when no billing row is linked the fee
// is computed on the fly and never persisted.
func (c *BillingController) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := c.Service.GetByAppointment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (c *BillingController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID     int      `json:"customer_id"`
		Amount         *float64 `json:"amount"`
		AppointmentIDs []int    `json:"appointment_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	missing := []string{}
	if body.CustomerID == 0 {
		missing = append(missing, "customer_id")
	}
	if body.Amount == nil {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		writeError(w, appErrors.NewValidation("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}
	if *body.Amount < 0 {
		writeError(w, appErrors.NewValidation("amount must be non-negative"))
		return
	}

	billing := &model.Billing{
		CustomerID: body.CustomerID,
		Amount:     *body.Amount,
	}
	details, err := c.Service.Create(r.Context(), billing, body.AppointmentIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, details)
}

func (c *BillingController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		CustomerID     *int     `json:"customer_id"`
		Amount         *float64 `json:"amount"`
		AppointmentIDs *[]int   `json:"appointment_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}
	if body.Amount != nil && *body.Amount < 0 {
		writeError(w, appErrors.NewValidation("amount must be non-negative"))
		return
	}

	details, err := c.Service.Update(r.Context(), id, repository.BillingUpdate{
		CustomerID: body.CustomerID,
		Amount:     body.Amount,
	}, body.AppointmentIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (c *BillingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Service.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Billing record with ID " + itoa(id) + " has been deleted",
	})
}

func (c *BillingController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Calculate quotes a fee without creating a billing record.
func (c *BillingController) Calculate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID int `json:"customer_id"`
		TrainerID  int `json:"trainer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}
	if body.CustomerID == 0 || body.TrainerID == 0 {
		writeError(w, appErrors.NewValidation("Missing required customer_id and/or trainer_id"))
		return
	}

	quote, err := c.Service.Quote(r.Context(), body.CustomerID, body.TrainerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
