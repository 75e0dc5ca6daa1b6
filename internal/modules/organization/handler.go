package organization

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the organization directory endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, authenticated, adminOnly func(http.Handler) http.Handler) {
	router.Route("/api/v1/organizations", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/", h.listOrganizations)
		r.Get("/{id}", h.getOrganization)
		r.With(adminOnly).Post("/", h.registerOrganization)
	})
}

func (h *Handler) registerOrganization(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contact_email"`
		Address      string `json:"address"`
		Description  string `json:"description"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.service.RegisterOrganization(r.Context(), req.Name, req.ContactEmail, req.Address, req.Description)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respond(w, http.StatusCreated, o)
}

func (h *Handler) getOrganization(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrganization(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.ListOrganizations(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, orgs)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
