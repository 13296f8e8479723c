// internal/controller/appointment_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
	"github.com/antohakim/gymtrack-backend/internal/service"
)

type AppointmentController struct {
	Service *service.AppointmentService
}

// List returns every appointment enriched with customer and trainer
// details. Partial-success policy: an unreachable peer degrades that
// relation to an error placeholder, never the whole response.
func (c *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	details, err := c.Service.ListDetails(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Get serves the composite view, same partial-success policy as List.
func (c *AppointmentController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	details, err := c.Service.GetDetails(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (c *AppointmentController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	details, err := c.Service.ListByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (c *AppointmentController) ListByTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	details, err := c.Service.ListByTrainer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Create validates both references against the peers. Strict policy on
// the write path: missing reference → 404, unreachable peer → 503.
func (c *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID  int    `json:"customer_id"`
		TrainerID   int    `json:"trainer_id"`
		BookingDate string `json:"booking_date"`
		Status      string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	missing := []string{}
	if body.CustomerID == 0 {
		missing = append(missing, "customer_id")
	}
	if body.TrainerID == 0 {
		missing = append(missing, "trainer_id")
	}
	if body.BookingDate == "" {
		missing = append(missing, "booking_date")
	}
	if body.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		writeError(w, appErrors.NewValidation("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	bookingDate, err := time.Parse(time.RFC3339, body.BookingDate)
	if err != nil {
		writeError(w, appErrors.NewValidation("booking_date must be an ISO-8601 timestamp"))
		return
	}

	appointment := &model.Appointment{
		CustomerID:  body.CustomerID,
		TrainerID:   body.TrainerID,
		BookingDate: bookingDate,
		Status:      body.Status,
	}
	details, err := c.Service.Create(r.Context(), appointment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, details)
}

func (c *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		CustomerID  *int       `json:"customer_id"`
		TrainerID   *int       `json:"trainer_id"`
		BookingDate *time.Time `json:"booking_date"`
		Status      *string    `json:"status"`
		BillingID   *int       `json:"billing_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	details, err := c.Service.Update(r.Context(), id, repository.AppointmentUpdate{
		CustomerID:  body.CustomerID,
		TrainerID:   body.TrainerID,
		BookingDate: body.BookingDate,
		Status:      body.Status,
		BillingID:   body.BillingID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (c *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
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
		"message": "Appointment with ID " + itoa(id) + " successfully deleted",
	})
}
