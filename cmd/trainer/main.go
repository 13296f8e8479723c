// cmd/trainer/main.go
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

	trainerRepo := &repository.TrainerRepository{DB: db.DB}

	trainerController := &controller.TrainerController{
		Repo: trainerRepo,
	}

	r := chi.NewRouter()

	// Trainer routes
	r.Get("/trainers", trainerController.List)
	r.Get("/trainers/{id}", trainerController.Get)
	r.Post("/trainers", trainerController.Create)
	r.Put("/trainers/{id}", trainerController.Update)
	r.Delete("/trainers/{id}", trainerController.Delete)

	port := os.Getenv("TRAINER_PORT")
	if port == "" {
		port = "5001"
	}

	log.Println("🚀 Trainer service running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
