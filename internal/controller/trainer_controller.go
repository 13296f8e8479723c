// internal/controller/trainer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

type TrainerController struct {
	Repo repository.TrainerRepositoryInterface
}

func (c *TrainerController) List(w http.ResponseWriter, r *http.Request) {
	trainers, err := c.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainers)
}

func (c *TrainerController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	trainer, err := c.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainer)
}

func (c *TrainerController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Specialty string `json:"specialty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	missing := []string{}
	if body.Name == "" {
		missing = append(missing, "name")
	}
	if body.Specialty == "" {
		missing = append(missing, "specialty")
	}
	if len(missing) > 0 {
		writeError(w, appErrors.NewValidation("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	trainer := &model.Trainer{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Specialty: body.Specialty,
	}
	if err := c.Repo.Create(trainer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trainer)
}

func (c *TrainerController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Specialty *string `json:"specialty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	trainer, err := c.Repo.Update(id, repository.TrainerUpdate{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Specialty: body.Specialty,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trainer)
}

func (c *TrainerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Repo.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Trainer with ID " + itoa(id) + " has been deleted",
	})
}
