// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
	"github.com/antohakim/gymtrack-backend/internal/repository"
)

type CustomerController struct {
	Repo repository.CustomerRepositoryInterface
}

func (c *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	customers, err := c.Repo.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (c *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	customer, err := c.Repo.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		MembershipType string `json:"membership_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	missing := []string{}
	if body.Name == "" {
		missing = append(missing, "name")
	}
	if body.MembershipType == "" {
		missing = append(missing, "membership_type")
	}
	if len(missing) > 0 {
		writeError(w, appErrors.NewValidation("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	customer := &model.Customer{
		Name:           body.Name,
		Email:          body.Email,
		Phone:          body.Phone,
		MembershipType: body.MembershipType,
	}
	if err := c.Repo.Create(customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (c *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Name           *string `json:"name"`
		Email          *string `json:"email"`
		Phone          *string `json:"phone"`
		MembershipType *string `json:"membership_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, appErrors.NewValidation("invalid request body"))
		return
	}

	customer, err := c.Repo.Update(id, repository.CustomerUpdate{
		Name:           body.Name,
		Email:          body.Email,
		Phone:          body.Phone,
		MembershipType: body.MembershipType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (c *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
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
		"message": "Customer with ID " + itoa(id) + " has been deleted",
	})
}
