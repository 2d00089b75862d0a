package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/validatedpatterns/reference-api/src/internal/domain"
)

// Handler serves the record and probe endpoints.
type Handler struct {
	records domain.RecordStore
}

// NewHandler creates a handler backed by the store held in deps.
func NewHandler(deps *domain.AppDependencies) *Handler {
	return &Handler{
		records: deps.RecordStore(),
	}
}

// writeJSON writes data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeJSONData writes a 200 OK JSON response.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeCreated writes a 201 Created response with a Location header.
func writeCreated(w http.ResponseWriter, location string, data interface{}) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
