// cmd/billing/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/antohakim/gymtrack-backend/internal/client"
	"github.com/antohakim/gymtrack-backend/internal/controller"
	"github.com/antohakim/gymtrack-backend/internal/db"
	"github.com/antohakim/gymtrack-backend/internal/queue"
	"github.com/antohakim/gymtrack-backend/internal/repository"
	"github.com/antohakim/gymtrack-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	customerURL := os.Getenv("CUSTOMER_SERVICE_URL")
	if customerURL == "" {
		customerURL = "http://localhost:5000"
	}
	trainerURL := os.Getenv("TRAINER_SERVICE_URL")
	if trainerURL == "" {
		trainerURL = "http://localhost:5001"
	}

	billingRepo := &repository.BillingRepository{DB: db.DB}
	appointmentRepo := &repository.AppointmentRepository{DB: db.DB}
	receiptRepo := &repository.ReceiptRepository{DB: db.DB}

	customers := client.NewCustomerClient(customerURL)
	trainers := client.NewTrainerClient(trainerURL)

	// Receipts go through RabbitMQ when a broker is configured,
	// otherwise the in-process queue handles them.
	var q queue.Queue
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		amqpQueue, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		q = amqpQueue
		log.Println("✅ Receipt jobs routed to RabbitMQ")
	} else {
		inMem := queue.NewInMemoryQueue()
		service.StartReceiptSubscriber(inMem, receiptRepo, billingRepo, customers)
		q = inMem
		log.Println("⚠️ No RABBITMQ_URL set, receipts processed in-process")
	}

	billingService := &service.BillingService{
		BillingRepo:     billingRepo,
		AppointmentRepo: appointmentRepo,
		ReceiptRepo:     receiptRepo,
		Customers:       customers,
		Trainers:        trainers,
		Queue:           q,
	}

	billingController := &controller.BillingController{
		Service: billingService,
	}

	r := chi.NewRouter()

	// Billing routes
	r.Get("/billings", billingController.List)
	r.Get("/billings/stats", billingController.Stats)
	r.Get("/billings/{id}", billingController.Get)
	r.Get("/billings/customer/{id}", billingController.ListByCustomer)
	r.Get("/billings/appointment/{id}", billingController.GetByAppointment)
	r.Post("/billings", billingController.Create)
	r.Post("/billings/calculate", billingController.Calculate)
	r.Put("/billings/{id}", billingController.Update)
	r.Delete("/billings/{id}", billingController.Delete)

	port := os.Getenv("BILLING_PORT")
	if port == "" {
		port = "5003"
	}

	log.Println("🚀 Billing service running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
