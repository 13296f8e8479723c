// cmd/customer/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/antohakim/gymtrack-backend/internal/controller"
	"github.com/antohakim/gymtrack-backend/internal/db"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	customerRepo := &repository.CustomerRepository{DB: db.DB}

	customerController := &controller.CustomerController{
		Repo: customerRepo,
	}

	r := chi.NewRouter()

	// Customer routes
	r.Get("/customers", customerController.List)
	r.Get("/customers/{id}", customerController.Get)
	r.Post("/customers", customerController.Create)
	r.Put("/customers/{id}", customerController.Update)
	r.Delete("/customers/{id}", customerController.Delete)

	port := os.Getenv("CUSTOMER_PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Customer service running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
