package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/salesdash/api/internal/service"
	"github.com/salesdash/api/pkg/httputil"
	"github.com/salesdash/api/pkg/validator"
)

// ContactHandler handles HTTP requests for the contact collection.
type ContactHandler struct {
	service *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a new contact HTTP handler.
func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: svc, logger: logger}
}

// CreateContactRequest is the JSON request body for creating a contact.
type CreateContactRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=255"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"omitempty,max=50"`
	Company       string     `json:"company" validate:"omitempty,max=255"`
	Status        string     `json:"status" validate:"omitempty,oneof=Lead Prospect Customer Inactive"`
	Notes         string     `json:"notes" validate:"omitempty,max=5000"`
	LastContacted *time.Time `json:"lastContacted"`
}

// UpdateContactRequest is the JSON request body for updating a contact.
// Absent fields keep their stored values.
type UpdateContactRequest struct {
	Name          *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone" validate:"omitempty,max=50"`
	Company       *string    `json:"company" validate:"omitempty,max=255"`
	Status        *string    `json:"status" validate:"omitempty,oneof=Lead Prospect Customer Inactive"`
	Notes         *string    `json:"notes" validate:"omitempty,max=5000"`
	LastContacted *time.Time `json:"lastContacted"`
}

// Create handles POST /api/contacts
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)

	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	contact, err := h.service.Create(r.Context(), service.CreateContactInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Status:        req.Status,
		Notes:         req.Notes,
		LastContacted: req.LastContacted,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, contact)
}

// List handles GET /api/contacts
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, contacts)
}

// GetByID handles GET /api/contacts/{id}
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, contact)
}

// Update handles PUT /api/contacts/{id}
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	limitBody(w, r)

	var req UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	contact, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), service.UpdateContactInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Status:        req.Status,
		Notes:         req.Notes,
		LastContacted: req.LastContacted,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/{id}
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteMessage(w, http.StatusOK, "Contact deleted")
}
