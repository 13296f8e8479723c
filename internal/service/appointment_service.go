// internal/service/appointment_service.go
package service

import (
	"context"

	"github.com/antohakim/gymtrack-backend/internal/client"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

// AppointmentService owns appointment records and composes customer and
// trainer details from the peer services.
type AppointmentService struct {
	AppointmentRepo repository.AppointmentRepositoryInterface
	Customers       client.CustomerLookup
	Trainers        client.TrainerLookup
}

// AppointmentDetails is an appointment enriched with its relations.
// A relation is either the peer's entity or, when the peer lookup
// failed, a placeholder object {"error": ...}. The base record is
// always present.
type AppointmentDetails struct {
	model.Appointment
	Customer interface{} `json:"customer,omitempty"`
	Trainer  interface{} `json:"trainer,omitempty"`
}

func errPlaceholder(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

// fetchRelations issues both peer lookups concurrently and waits for
// both to finish (or time out). Partial-success policy: a failed lookup
// becomes a placeholder, it never fails the composite.
func (s *AppointmentService) fetchRelations(ctx context.Context, customerID, trainerID int) (customer, trainer interface{}) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		t, err := s.Trainers.GetByID(ctx, trainerID)
		if err != nil {
			trainer = errPlaceholder(err)
			return
		}
		trainer = t
	}()

	c, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		customer = errPlaceholder(err)
	} else {
		customer = c
	}

	<-done
	return customer, trainer
}

func (s *AppointmentService) enrich(ctx context.Context, a *model.Appointment) *AppointmentDetails {
	customer, trainer := s.fetchRelations(ctx, a.CustomerID, a.TrainerID)
	return &AppointmentDetails{Appointment: *a, Customer: customer, Trainer: trainer}
}

func (s *AppointmentService) GetDetails(ctx context.Context, id int) (*AppointmentDetails, error) {
	a, err := s.AppointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, a), nil
}

func (s *AppointmentService) ListDetails(ctx context.Context) ([]*AppointmentDetails, error) {
	appointments, err := s.AppointmentRepo.ListAll()
	if err != nil {
		return nil, err
	}
	details := []*AppointmentDetails{}
	for i := range appointments {
		details = append(details, s.enrich(ctx, &appointments[i]))
	}
	return details, nil
}

// ListByCustomer returns the customer's appointments, each enriched
// with trainer details only. The customer reference itself is verified
// against the peer first: unknown customer is a 404, unreachable peer a 503.
func (s *AppointmentService) ListByCustomer(ctx context.Context, customerID int) ([]*AppointmentDetails, error) {
	if _, err := s.Customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	appointments, err := s.AppointmentRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	details := []*AppointmentDetails{}
	for i := range appointments {
		d := &AppointmentDetails{Appointment: appointments[i]}
		if t, err := s.Trainers.GetByID(ctx, appointments[i].TrainerID); err != nil {
			d.Trainer = errPlaceholder(err)
		} else {
			d.Trainer = t
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *AppointmentService) ListByTrainer(ctx context.Context, trainerID int) ([]*AppointmentDetails, error) {
	if _, err := s.Trainers.GetByID(ctx, trainerID); err != nil {
		return nil, err
	}
	appointments, err := s.AppointmentRepo.ListByTrainer(trainerID)
	if err != nil {
		return nil, err
	}
	details := []*AppointmentDetails{}
	for i := range appointments {
		d := &AppointmentDetails{Appointment: appointments[i]}
		if c, err := s.Customers.GetByID(ctx, appointments[i].CustomerID); err != nil {
			d.Customer = errPlaceholder(err)
		} else {
			d.Customer = c
		}
		details = append(details, d)
	}
	return details, nil
}

// Create validates both references against the peers before writing.
// Strict policy on the write path: a missing reference aborts with the
// peer's not-found, an unreachable peer aborts with dependency-unavailable,
// and in neither case is a row inserted.
func (s *AppointmentService) Create(ctx context.Context, a *model.Appointment) (*AppointmentDetails, error) {
	customer, err := s.Customers.GetByID(ctx, a.CustomerID)
	if err != nil {
		return nil, err
	}
	trainer, err := s.Trainers.GetByID(ctx, a.TrainerID)
	if err != nil {
		return nil, err
	}

	if err := s.AppointmentRepo.Create(a); err != nil {
		return nil, err
	}
	return &AppointmentDetails{Appointment: *a, Customer: customer, Trainer: trainer}, nil
}

// Update applies a sparse field set. The target is checked before any
// peer call; a changed customer or trainer reference is re-validated.
func (s *AppointmentService) Update(ctx context.Context, id int, u repository.AppointmentUpdate) (*AppointmentDetails, error) {
	if _, err := s.AppointmentRepo.GetByID(id); err != nil {
		return nil, err
	}
	if u.CustomerID != nil {
		if _, err := s.Customers.GetByID(ctx, *u.CustomerID); err != nil {
			return nil, err
		}
	}
	if u.TrainerID != nil {
		if _, err := s.Trainers.GetByID(ctx, *u.TrainerID); err != nil {
			return nil, err
		}
	}

	updated, err := s.AppointmentRepo.Update(id, u)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, updated), nil
}

func (s *AppointmentService) Delete(id int) error {
	return s.AppointmentRepo.Delete(id)
}
