package listing

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the storage operations for food listings.
type Repository interface {
	// List returns every listing with no status filter or ordering
	// guarantee. The user-facing path narrows to available listings
	// in the service layer.
	List(ctx context.Context) ([]*Listing, error)

	// ListForAdmin returns every listing ordered by date_posted descending.
	ListForAdmin(ctx context.Context) ([]*Listing, error)

	GetByID(ctx context.Context, id string) (*Listing, error)

	// Create persists a new listing. Status and DatePosted are assigned
	// server-side; the stored values are written back into l.
	Create(ctx context.Context, l *Listing) error

	// Update merges the non-nil fields of req into the listing and stamps
	// updated_at. Returns a not-found StoreError for an unknown id.
	Update(ctx context.Context, id string, req UpdateListingRequest) error

	// Delete removes a listing permanently. Deleting an id that does not
	// exist is a no-op success.
	Delete(ctx context.Context, id string) error

	// Claim transitions a listing from available to claimed and stamps
	// claimed_at. The update is conditional on the current status, so a
	// second claim on the same listing fails with a conflict instead of
	// silently overwriting the first.
	Claim(ctx context.Context, id string) error
}

// parseID normalizes id parsing errors into a not-found StoreError, since
// a malformed id can never name an existing listing.
func parseID(op, id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &StoreError{Op: op, Kind: KindNotFound, Hint: "listing not found", Err: err}
	}
	return uid, nil
}
