package listing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the food-listing HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the listing routes. Every route requires an
// authenticated principal; mutations other than claim require the admin
// role.
func (h *Handler) RegisterRoutes(router *chi.Mux, authenticated, adminOnly func(http.Handler) http.Handler) {
	router.Route("/api/v1/listings", func(r chi.Router) {
		r.Use(authenticated)

		r.Get("/", h.listAvailable)
		r.Get("/map", h.mapPins)
		r.Post("/{id}/claim", h.claimListing)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/admin", h.listForAdmin)
			r.Get("/{id}", h.getListing)
			r.Post("/", h.createListing)
			r.Put("/{id}", h.updateListing)
			r.Delete("/{id}", h.deleteListing)
			r.Post("/seed", h.seedSampleData)
		})
	})
}

func filtersFromQuery(r *http.Request) Filters {
	q := r.URL.Query()
	return Filters{
		Search:    q.Get("search"),
		Dietary:   q.Get("dietary"),
		Freshness: q.Get("freshness"),
	}
}

func (h *Handler) listAvailable(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.ListAvailable(r.Context(), filtersFromQuery(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, listings)
}

func (h *Handler) listForAdmin(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.ListForAdmin(r.Context(), filtersFromQuery(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, listings)
}

func (h *Handler) mapPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.service.MapPins(r.Context(), filtersFromQuery(r), time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, pins)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	l, err := h.service.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	l, err := h.service.CreateListing(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, l)
}

func (h *Handler) updateListing(w http.ResponseWriter, r *http.Request) {
	var req UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	l, err := h.service.UpdateListing(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) deleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteListing(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) claimListing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClaimListing(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": string(StatusClaimed)})
}

func (h *Handler) seedSampleData(w http.ResponseWriter, r *http.Request) {
	added, err := h.service.SeedSampleData(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]int{"added": added})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch KindOf(err) {
	case KindAccessDenied:
		status = http.StatusForbidden
	case KindServiceUnavailable:
		status = http.StatusServiceUnavailable
	case KindNotFound:
		status = http.StatusNotFound
	case KindConflict:
		status = http.StatusConflict
	default:
		var se *StoreError
		if !errors.As(err, &se) {
			// Validation and lifecycle errors from the service layer.
			status = http.StatusBadRequest
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
