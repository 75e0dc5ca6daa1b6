package listing

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a food listing.
type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusExpired   Status = "expired"
)

// Freshness is the storage/preparation category of the donated food.
type Freshness string

const (
	FreshnessFresh     Freshness = "fresh"
	FreshnessFrozen    Freshness = "frozen"
	FreshnessPreserved Freshness = "preserved"
)

// Dietary classifies a listing's dietary suitability.
type Dietary string

const (
	DietaryVegetarian Dietary = "vegetarian"
	DietaryVegan      Dietary = "vegan"
	DietaryMixed      Dietary = "mixed"
)

// SuggestedAllergens is the fixed suggestion list shown on the posting form.
// Allergen tags are free text and are not constrained to it.
var SuggestedAllergens = []string{
	"gluten", "dairy", "nuts", "eggs", "soy", "fish", "shellfish", "wheat",
}

// Listing is a single food-donation record.
type Listing struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Organization string     `json:"organization"`
	Description  string     `json:"description"`
	Quantity     string     `json:"quantity"`
	Location     string     `json:"location"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Freshness    Freshness  `json:"freshness"`
	Dietary      Dietary    `json:"dietary"`
	Allergens    []string   `json:"allergens"`
	Image        string     `json:"image"`
	Status       Status     `json:"status"`
	DatePosted   time.Time  `json:"date_posted"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CreateListingRequest is the payload for posting a new listing.
type CreateListingRequest struct {
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Description  string   `json:"description"`
	Quantity     string   `json:"quantity"`
	Location     string   `json:"location"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Freshness    string   `json:"freshness"`
	Dietary      string   `json:"dietary"`
	Allergens    []string `json:"allergens"`
	Image        string   `json:"image"`
}

// UpdateListingRequest is the payload for editing an existing listing.
// A nil field is left untouched; Status, when present, must be a legal
// lifecycle transition from the listing's current status.
type UpdateListingRequest struct {
	Name         *string   `json:"name,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Quantity     *string   `json:"quantity,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Freshness    *string   `json:"freshness,omitempty"`
	Dietary      *string   `json:"dietary,omitempty"`
	Allergens    *[]string `json:"allergens,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Status       *string   `json:"status,omitempty"`
}

// MapPin is the per-listing payload consumed by the map view.
type MapPin struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Organization   string    `json:"organization"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Quantity       string    `json:"quantity"`
	Image          string    `json:"image"`
	FreshnessColor string    `json:"freshness_color"`
	DietaryLabel   string    `json:"dietary_label"`
	PostedAgo      string    `json:"posted_ago"`
}
