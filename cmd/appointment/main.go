// cmd/appointment/main.go
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

	appointmentRepo := &repository.AppointmentRepository{DB: db.DB}

	appointmentService := &service.AppointmentService{
		AppointmentRepo: appointmentRepo,
		Customers:       client.NewCustomerClient(customerURL),
		Trainers:        client.NewTrainerClient(trainerURL),
	}

	appointmentController := &controller.AppointmentController{
		Service: appointmentService,
	}

	r := chi.NewRouter()

	// Appointment routes
	r.Get("/appointments", appointmentController.List)
	r.Get("/appointments/{id}", appointmentController.Get)
	r.Get("/appointments/customer/{id}", appointmentController.ListByCustomer)
	r.Get("/appointments/trainer/{id}", appointmentController.ListByTrainer)
	r.Post("/appointments", appointmentController.Create)
	r.Put("/appointments/{id}", appointmentController.Update)
	r.Delete("/appointments/{id}", appointmentController.Delete)

	port := os.Getenv("APPOINTMENT_PORT")
	if port == "" {
		port = "5002"
	}

	log.Println("🚀 Appointment service running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
