package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/validatedpatterns/reference-api/src/internal/errors"
	"github.com/validatedpatterns/reference-api/src/internal/log"
	"github.com/validatedpatterns/reference-api/src/internal/resource"
)

const recordKind = "example"

// GetExamples returns all records.
// GET /api/example
func (h *Handler) GetExamples(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.records.List())
}

// GetExample returns a single record by id.
// GET /api/example/{id}
func (h *Handler) GetExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.records.Get(id)
	if !ok {
		notFound(w, id)
		return
	}
	writeJSONData(w, rec)
}

// CreateExample stores a new record. Any id or status in the payload is ignored.
// POST /api/example
func (h *Handler) CreateExample(w http.ResponseWriter, r *http.Request) {
	var fields resource.Fields
	if err := decodeJSON(r, &fields); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	rec := h.records.Create(fields)
	writeCreated(w, ExamplePath+"/"+rec.ID, rec)
}

// UpdateExample replaces the fields of an existing record. The id in the path
// wins over any id in the payload.
// PUT /api/example/{id}
func (h *Handler) UpdateExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields resource.Fields
	if err := decodeJSON(r, &fields); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	rec, ok := h.records.Update(id, fields)
	if !ok {
		notFound(w, id)
		return
	}
	writeJSONData(w, rec)
}

// DeleteExample removes a record.
// DELETE /api/example/{id}
func (h *Handler) DeleteExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.records.Delete(id) {
		notFound(w, id)
		return
	}
	writeNoContent(w)
}

func notFound(w http.ResponseWriter, id string) {
	log.Debugf("%v", apperrors.NewNotFoundError(recordKind, id))
	WriteNotFound(w)
}
