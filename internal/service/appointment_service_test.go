package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
	"github.com/antohakim/gymtrack-backend/internal/service"
)

// Mock repositories and peer lookups

type MockAppointmentRepo struct {
	appointments map[int]*model.Appointment
	created      []*model.Appointment
}

func (m *MockAppointmentRepo) ListAll() ([]model.Appointment, error) {
	out := []model.Appointment{}
	for _, a := range m.appointments {
		out = append(out, *a)
	}
	return out, nil
}
func (m *MockAppointmentRepo) ListByCustomer(customerID int) ([]model.Appointment, error) {
	out := []model.Appointment{}
	for _, a := range m.appointments {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}
func (m *MockAppointmentRepo) ListByTrainer(trainerID int) ([]model.Appointment, error) {
	out := []model.Appointment{}
	for _, a := range m.appointments {
		if a.TrainerID == trainerID {
			out = append(out, *a)
		}
	}
	return out, nil
}
func (m *MockAppointmentRepo) ListByBilling(billingID int) ([]model.Appointment, error) {
	return []model.Appointment{}, nil
}
func (m *MockAppointmentRepo) GetByID(id int) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, appErrors.NewNotFound("Appointment", id)
	}
	return a, nil
}
func (m *MockAppointmentRepo) Create(a *model.Appointment) error {
	a.ID = len(m.appointments) + len(m.created) + 1
	m.created = append(m.created, a)
	return nil
}
func (m *MockAppointmentRepo) Update(id int, u repository.AppointmentUpdate) (*model.Appointment, error) {
	a, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u.Empty() {
		return nil, appErrors.NewValidation("No valid fields to update")
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.CustomerID != nil {
		a.CustomerID = *u.CustomerID
	}
	if u.TrainerID != nil {
		a.TrainerID = *u.TrainerID
	}
	return a, nil
}
func (m *MockAppointmentRepo) Delete(id int) error {
	if _, err := m.GetByID(id); err != nil {
		return err
	}
	delete(m.appointments, id)
	return nil
}

type MockCustomerLookup struct {
	customers map[int]*model.Customer
	err       error
}

func (m *MockCustomerLookup) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewNotFound("Customer", id)
	}
	return c, nil
}

type MockTrainerLookup struct {
	trainers map[int]*model.Trainer
	err      error
}

func (m *MockTrainerLookup) GetByID(ctx context.Context, id int) (*model.Trainer, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.trainers[id]
	if !ok {
		return nil, appErrors.NewNotFound("Trainer", id)
	}
	return t, nil
}

func newAppointmentService(repo *MockAppointmentRepo, customers *MockCustomerLookup, trainers *MockTrainerLookup) *service.AppointmentService {
	return &service.AppointmentService{
		AppointmentRepo: repo,
		Customers:       customers,
		Trainers:        trainers,
	}
}

func newAppointment(id, customerID, trainerID int) *model.Appointment {
	return &model.Appointment{
		ID:          id,
		CustomerID:  customerID,
		TrainerID:   trainerID,
		BookingDate: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:      "scheduled",
	}
}

// --- Tests ---

func TestCreateAppointmentUnknownCustomer(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{}}
	svc := newAppointmentService(
		repo,
		&MockCustomerLookup{customers: map[int]*model.Customer{}},
		&MockTrainerLookup{trainers: map[int]*model.Trainer{1: {ID: 1, Name: "Johnny"}}},
	)

	_, err := svc.Create(context.Background(), newAppointment(0, 99, 1))

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Customer", notFound.Kind)
	assert.Equal(t, 99, notFound.ID)
	assert.Empty(t, repo.created, "no appointment row may be written")
}

func TestCreateAppointmentUnknownTrainer(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{}}
	svc := newAppointmentService(
		repo,
		&MockCustomerLookup{customers: map[int]*model.Customer{1: {ID: 1, Name: "Giselle"}}},
		&MockTrainerLookup{trainers: map[int]*model.Trainer{}},
	)

	_, err := svc.Create(context.Background(), newAppointment(0, 1, 77))

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Trainer", notFound.Kind)
	assert.Empty(t, repo.created)
}

func TestCreateAppointmentPeerUnavailable(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{}}
	svc := newAppointmentService(
		repo,
		&MockCustomerLookup{err: appErrors.NewDependencyUnavailable("customer", errors.New("connection refused"))},
		&MockTrainerLookup{trainers: map[int]*model.Trainer{1: {ID: 1}}},
	)

	_, err := svc.Create(context.Background(), newAppointment(0, 1, 1))

	var dependency *appErrors.ErrDependencyUnavailable
	require.ErrorAs(t, err, &dependency)
	assert.Empty(t, repo.created, "peer failure must not be treated as not-found nor allow a write")
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{}}
	svc := newAppointmentService(
		repo,
		&MockCustomerLookup{customers: map[int]*model.Customer{1: {ID: 1, Name: "Giselle", MembershipType: "Premium"}}},
		&MockTrainerLookup{trainers: map[int]*model.Trainer{2: {ID: 2, Name: "Johnny", Specialty: "Strength Training"}}},
	)

	details, err := svc.Create(context.Background(), newAppointment(0, 1, 2))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	customer, ok := details.Customer.(*model.Customer)
	require.True(t, ok)
	assert.Equal(t, "Giselle", customer.Name)
}

func TestGetDetailsTrainerPeerDown(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{
		5: newAppointment(5, 1, 2),
	}}
	svc := newAppointmentService(
		repo,
		&MockCustomerLookup{customers: map[int]*model.Customer{1: {ID: 1, Name: "Giselle"}}},
		&MockTrainerLookup{err: appErrors.NewDependencyUnavailable("trainer", errors.New("timeout"))},
	)

	details, err := svc.GetDetails(context.Background(), 5)

	require.NoError(t, err, "one failed enrichment must not fail the composite")
	customer, ok := details.Customer.(*model.Customer)
	require.True(t, ok)
	assert.Equal(t, "Giselle", customer.Name)

	placeholder, ok := details.Trainer.(map[string]string)
	require.True(t, ok, "failed relation must be an explicit error placeholder")
	assert.Contains(t, placeholder["error"], "trainer service unavailable")
}

func TestGetDetailsMissingAppointment(t *testing.T) {
	svc := newAppointmentService(
		&MockAppointmentRepo{appointments: map[int]*model.Appointment{}},
		&MockCustomerLookup{},
		&MockTrainerLookup{},
	)

	_, err := svc.GetDetails(context.Background(), 42)

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Appointment with ID 42 not found")
}

func TestUpdateAppointmentEmptyPayload(t *testing.T) {
	repo := &MockAppointmentRepo{appointments: map[int]*model.Appointment{
		5: newAppointment(5, 1, 2),
	}}
	svc := newAppointmentService(repo,
		&MockCustomerLookup{customers: map[int]*model.Customer{1: {ID: 1}}},
		&MockTrainerLookup{trainers: map[int]*model.Trainer{2: {ID: 2}}},
	)

	_, err := svc.Update(context.Background(), 5, repository.AppointmentUpdate{})

	var validation *appErrors.ErrValidation
	require.ErrorAs(t, err, &validation, "empty update on an existing target is a validation error")
}

func TestUpdateAppointmentMissingTargetCheckedFirst(t *testing.T) {
	svc := newAppointmentService(
		&MockAppointmentRepo{appointments: map[int]*model.Appointment{}},
		&MockCustomerLookup{},
		&MockTrainerLookup{},
	)

	// Empty payload and missing target: not-found wins.
	_, err := svc.Update(context.Background(), 42, repository.AppointmentUpdate{})

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestListByCustomerUnknownCustomer(t *testing.T) {
	svc := newAppointmentService(
		&MockAppointmentRepo{appointments: map[int]*model.Appointment{}},
		&MockCustomerLookup{customers: map[int]*model.Customer{}},
		&MockTrainerLookup{},
	)

	_, err := svc.ListByCustomer(context.Background(), 9)

	var notFound *appErrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Customer", notFound.Kind)
}
