// internal/service/billing_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/antohakim/gymtrack-backend/internal/client"
	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/queue"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

// ReceiptTopic is the queue topic for receipt dispatch jobs.
const ReceiptTopic = "billing_receipts"

// BillingService owns billing records, the appointment back-references
// and the receipt pipeline. Customer and trainer attributes come from
// the peer services.
type BillingService struct {
	BillingRepo     repository.BillingRepositoryInterface
	AppointmentRepo repository.AppointmentRepositoryInterface
	ReceiptRepo     repository.ReceiptRepositoryInterface
	Customers       client.CustomerLookup
	Trainers        client.TrainerLookup
	Queue           queue.Queue

	linkLocks keyedLocks
}

// keyedLocks serializes link-set mutations per billing id so the
// clear-then-set phases are never interleaved for the same billing.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func (k *keyedLocks) forID(id int) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.locks == nil {
		k.locks = make(map[int]*sync.Mutex)
	}
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	return l
}

// BillingDetails is a billing record with its linked appointments.
type BillingDetails struct {
	model.Billing
	Appointments []model.Appointment `json:"appointments"`
}

// AppointmentBillingView is the composite served by
// GET /billings/appointment/{id}. Billing holds either the persisted
// record, an on-the-fly ComputedBilling, or an error placeholder when
// the fee could not be computed because a peer was unreachable.
type AppointmentBillingView struct {
	Appointment *AppointmentDetails `json:"appointment"`
	Billing     interface{}         `json:"billing"`
}

// ComputedBilling is a fee quote for an appointment that has no
// persisted billing yet. It is never written to the store.
type ComputedBilling struct {
	CustomerID int     `json:"customer_id"`
	Amount     float64 `json:"amount"`
}

func (s *BillingService) List() ([]model.Billing, error) {
	return s.BillingRepo.ListAll()
}

func (s *BillingService) Get(id int) (*BillingDetails, error) {
	b, err := s.BillingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	appointments, err := s.AppointmentRepo.ListByBilling(id)
	if err != nil {
		return nil, err
	}
	return &BillingDetails{Billing: *b, Appointments: appointments}, nil
}

// ListByCustomer verifies the customer against the peer service first:
// unknown customer is a 404, unreachable peer a 503.
func (s *BillingService) ListByCustomer(ctx context.Context, customerID int) ([]model.Billing, error) {
	if _, err := s.Customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.BillingRepo.ListByCustomer(customerID)
}

// GetByAppointment assembles the appointment with customer and trainer
// details and its billing. Enrichment is partial-success; the billing
// portion falls back to a computed fee when no record is linked yet,
// which requires both peers and degrades to a placeholder otherwise.
func (s *BillingService) GetByAppointment(ctx context.Context, appointmentID int) (*AppointmentBillingView, error) {
	a, err := s.AppointmentRepo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}

	var (
		customer    *model.Customer
		trainer     *model.Trainer
		customerErr error
		trainerErr  error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		trainer, trainerErr = s.Trainers.GetByID(ctx, a.TrainerID)
	}()
	customer, customerErr = s.Customers.GetByID(ctx, a.CustomerID)
	<-done

	details := &AppointmentDetails{Appointment: *a}
	if customerErr != nil {
		details.Customer = errPlaceholder(customerErr)
	} else {
		details.Customer = customer
	}
	if trainerErr != nil {
		details.Trainer = errPlaceholder(trainerErr)
	} else {
		details.Trainer = trainer
	}

	view := &AppointmentBillingView{Appointment: details}

	if a.BillingID != nil {
		billing, err := s.BillingRepo.GetByID(*a.BillingID)
		if err != nil {
			view.Billing = errPlaceholder(err)
			return view, nil
		}
		view.Billing = billing
		return view, nil
	}

	// No persisted billing: quote on the fly, never persist.
	if customerErr != nil {
		view.Billing = errPlaceholder(customerErr)
		return view, nil
	}
	if trainerErr != nil {
		view.Billing = errPlaceholder(trainerErr)
		return view, nil
	}
	_, _, total := CalculateFee(customer.MembershipType, trainer.Specialty)
	view.Billing = &ComputedBilling{CustomerID: a.CustomerID, Amount: total}
	return view, nil
}

// Create validates the customer against the peer, inserts the billing,
// links the given appointments and queues a receipt. The peer check is
// strict: missing customer is a 404, unreachable peer a 503, and no row
// is written in either case.
func (s *BillingService) Create(ctx context.Context, b *model.Billing, appointmentIDs []int) (*BillingDetails, error) {
	customer, err := s.Customers.GetByID(ctx, b.CustomerID)
	if err != nil {
		return nil, err
	}

	if err := s.BillingRepo.Create(b); err != nil {
		return nil, err
	}
	b.CustomerName = customer.Name

	if len(appointmentIDs) > 0 {
		lock := s.linkLocks.forID(b.ID)
		lock.Lock()
		err := s.BillingRepo.ReplaceAppointmentLinks(b.ID, appointmentIDs)
		lock.Unlock()
		if err != nil {
			return nil, err
		}
	}

	s.queueReceipt(b)

	appointments, err := s.AppointmentRepo.ListByBilling(b.ID)
	if err != nil {
		return nil, err
	}
	return &BillingDetails{Billing: *b, Appointments: appointments}, nil
}

// Update applies the sparse field set and, when appointmentIDs is
// non-nil, replaces the whole link set: every appointment previously
// linked to this billing is cleared, then exactly the given set is
// linked, serialized per billing id.
func (s *BillingService) Update(ctx context.Context, id int, u repository.BillingUpdate, appointmentIDs *[]int) (*BillingDetails, error) {
	if _, err := s.BillingRepo.GetByID(id); err != nil {
		return nil, err
	}
	if u.Empty() && appointmentIDs == nil {
		return nil, appErrors.NewValidation("No valid fields to update")
	}
	if u.CustomerID != nil {
		if _, err := s.Customers.GetByID(ctx, *u.CustomerID); err != nil {
			return nil, err
		}
	}

	if !u.Empty() {
		if _, err := s.BillingRepo.Update(id, u); err != nil {
			return nil, err
		}
	}

	if appointmentIDs != nil {
		lock := s.linkLocks.forID(id)
		lock.Lock()
		err := s.BillingRepo.ReplaceAppointmentLinks(id, *appointmentIDs)
		lock.Unlock()
		if err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

// Delete unlinks dependent appointments and removes the billing row.
func (s *BillingService) Delete(id int) error {
	lock := s.linkLocks.forID(id)
	lock.Lock()
	defer lock.Unlock()
	return s.BillingRepo.Delete(id)
}

// Quote computes the fee for a customer/trainer pair without touching
// the store. Missing entities surface as the peer's 404.
func (s *BillingService) Quote(ctx context.Context, customerID, trainerID int) (*FeeQuote, error) {
	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	trainer, err := s.Trainers.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return QuoteFor(customer, trainer), nil
}

func (s *BillingService) Stats() (*model.BillingStats, error) {
	return s.BillingRepo.Stats()
}

// queueReceipt records a pending receipt and hands its id to the queue.
// Dispatch failures are logged, they never fail the billing create.
func (s *BillingService) queueReceipt(b *model.Billing) {
	if s.ReceiptRepo == nil || s.Queue == nil {
		return
	}
	receipt := &model.Receipt{BillingID: b.ID, CustomerID: b.CustomerID}
	if err := s.ReceiptRepo.Create(receipt); err != nil {
		log.Println("⚠️ Failed to create receipt for billing", b.ID, ":", err)
		return
	}
	if err := s.Queue.Publish(ReceiptTopic, receipt.ID); err != nil {
		log.Println("⚠️ Failed to queue receipt", receipt.ID, ":", err)
	}
}

// RenderReceipt builds the customer-facing receipt text.
func RenderReceipt(b *model.Billing, customerName string) string {
	if customerName == "" {
		customerName = fmt.Sprintf("customer %d", b.CustomerID)
	}
	return fmt.Sprintf("Receipt #%d: %s was charged %.0f for gym services", b.ID, customerName, b.Amount)
}
