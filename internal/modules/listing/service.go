package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines the food-listing business logic.
type Service interface {
	// ListAvailable returns listings visible to regular users: available
	// status only, narrowed by the given filters.
	ListAvailable(ctx context.Context, f Filters) ([]*Listing, error)

	// ListForAdmin returns every listing regardless of status, newest
	// first, narrowed by the given filters.
	ListForAdmin(ctx context.Context, f Filters) ([]*Listing, error)

	// GetListing retrieves a single listing by id.
	GetListing(ctx context.Context, id string) (*Listing, error)

	// CreateListing validates and persists a new listing with
	// status=available and a server-assigned posting time.
	CreateListing(ctx context.Context, req CreateListingRequest) (*Listing, error)

	// UpdateListing merges the given fields into a listing. A status
	// change is validated against the lifecycle transition table.
	UpdateListing(ctx context.Context, id string, req UpdateListingRequest) (*Listing, error)

	// DeleteListing removes a listing permanently. Deleting an unknown id
	// succeeds.
	DeleteListing(ctx context.Context, id string) error

	// ClaimListing reserves an available listing for the caller.
	ClaimListing(ctx context.Context, id string) error

	// MapPins returns the user-visible listings as map pins with their
	// display fields rendered relative to now.
	MapPins(ctx context.Context, f Filters, now time.Time) ([]MapPin, error)

	// SeedSampleData inserts the bundled sample listings and reports how
	// many were added.
	SeedSampleData(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

// NewService creates a new listing service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validTransitions defines the allowed status state machine. Expired is
// reachable only through an explicit admin update; nothing in the claim
// path produces it, and no transition leaves it.
var validTransitions = map[Status][]Status{
	StatusAvailable: {StatusClaimed, StatusExpired},
	StatusClaimed:   {StatusExpired},
	StatusExpired:   {},
}

func (s *service) ListAvailable(ctx context.Context, f Filters) ([]*Listing, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(listings, f, ScopeUser), nil
}

func (s *service) ListForAdmin(ctx context.Context, f Filters) ([]*Listing, error) {
	listings, err := s.repo.ListForAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(listings, f, ScopeAdmin), nil
}

func (s *service) GetListing(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateListing(ctx context.Context, req CreateListingRequest) (*Listing, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Organization == "" {
		return nil, fmt.Errorf("organization is required")
	}
	if req.Image == "" {
		return nil, fmt.Errorf("image is required")
	}
	freshness, err := parseFreshness(req.Freshness)
	if err != nil {
		return nil, err
	}
	dietary, err := parseDietary(req.Dietary)
	if err != nil {
		return nil, err
	}

	allergens := req.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	l := &Listing{
		ID:           uuid.New(),
		Name:         req.Name,
		Organization: req.Organization,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Freshness:    freshness,
		Dietary:      dietary,
		Allergens:    allergens,
		Image:        req.Image,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) UpdateListing(ctx context.Context, id string, req UpdateListingRequest) (*Listing, error) {
	if req.Freshness != nil {
		if _, err := parseFreshness(*req.Freshness); err != nil {
			return nil, err
		}
	}
	if req.Dietary != nil {
		if _, err := parseDietary(*req.Dietary); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		newStatus := Status(*req.Status)
		// Re-asserting the current status is a no-op, not a transition.
		if newStatus != current.Status && !transitionAllowed(current.Status, newStatus) {
			return nil, fmt.Errorf("cannot transition listing from %s to %s", current.Status, newStatus)
		}
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteListing(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ClaimListing(ctx context.Context, id string) error {
	return s.repo.Claim(ctx, id)
}

func (s *service) MapPins(ctx context.Context, f Filters, now time.Time) ([]MapPin, error) {
	listings, err := s.ListAvailable(ctx, f)
	if err != nil {
		return nil, err
	}
	pins := make([]MapPin, 0, len(listings))
	for _, l := range listings {
		pins = append(pins, MapPin{
			ID:             l.ID,
			Name:           l.Name,
			Organization:   l.Organization,
			Latitude:       l.Latitude,
			Longitude:      l.Longitude,
			Quantity:       l.Quantity,
			Image:          l.Image,
			FreshnessColor: FreshnessColor(l.Freshness),
			DietaryLabel:   DietaryLabel(l.Dietary),
			PostedAgo:      RelativeAge(l.DatePosted, now),
		})
	}
	return pins, nil
}

func (s *service) SeedSampleData(ctx context.Context) (int, error) {
	added := 0
	for _, req := range sampleListings {
		if _, err := s.CreateListing(ctx, req); err != nil {
			return added, fmt.Errorf("seeding %q: %w", req.Name, err)
		}
		added++
	}
	return added, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func transitionAllowed(from, to Status) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func parseFreshness(value string) (Freshness, error) {
	switch f := Freshness(value); f {
	case FreshnessFresh, FreshnessFrozen, FreshnessPreserved:
		return f, nil
	default:
		return "", fmt.Errorf("invalid freshness %q", value)
	}
}

func parseDietary(value string) (Dietary, error) {
	switch d := Dietary(value); d {
	case DietaryVegetarian, DietaryVegan, DietaryMixed:
		return d, nil
	default:
		return "", fmt.Errorf("invalid dietary %q", value)
	}
}
