// Package controller holds the HTTP handlers for all four services.
// Success bodies are the entity (or list); every failure is
// {"error": message} with the status derived from the error taxonomy.
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, appErrors.StatusCode(err), map[string]string{"error": err.Error()})
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, appErrors.NewValidation("invalid id")
	}
	return id, nil
}
