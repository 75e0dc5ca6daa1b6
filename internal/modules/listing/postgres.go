package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const listingColumns = `id, name, organization, description, quantity, location,
       latitude, longitude, freshness, dietary, allergens, image, status,
       date_posted, claimed_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]*Listing, error) {
	return r.queryListings(ctx, "list listings",
		`SELECT `+listingColumns+` FROM food_listings`)
}

func (r *postgresRepo) ListForAdmin(ctx context.Context) ([]*Listing, error) {
	return r.queryListings(ctx, "list listings for admin",
		`SELECT `+listingColumns+` FROM food_listings ORDER BY date_posted DESC`)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Listing, error) {
	const op = "get listing"
	uid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}
	l, err := scanListing(r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM food_listings WHERE id=$1`, uid).Scan)
	if err != nil {
		return nil, classify(op, err)
	}
	return l, nil
}

func (r *postgresRepo) Create(ctx context.Context, l *Listing) error {
	const op = "create listing"
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO food_listings
		  (id, name, organization, description, quantity, location,
		   latitude, longitude, freshness, dietary, allergens, image, status, date_posted)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,'available',NOW())
		RETURNING status, date_posted`,
		l.ID, l.Name, l.Organization, l.Description, l.Quantity, l.Location,
		l.Latitude, l.Longitude, l.Freshness, l.Dietary,
		pq.Array(l.Allergens), l.Image).Scan(&l.Status, &l.DatePosted)
	return classify(op, err)
}

func (r *postgresRepo) Update(ctx context.Context, id string, req UpdateListingRequest) error {
	const op = "update listing"
	uid, err := parseID(op, id)
	if err != nil {
		return err
	}

	set := []string{"updated_at=NOW()"}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		set = append(set, fmt.Sprintf("%s=$%d", column, n))
		args = append(args, value)
		n++
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Organization != nil {
		add("organization", *req.Organization)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Quantity != nil {
		add("quantity", *req.Quantity)
	}
	if req.Location != nil {
		add("location", *req.Location)
	}
	if req.Latitude != nil {
		add("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		add("longitude", *req.Longitude)
	}
	if req.Freshness != nil {
		add("freshness", *req.Freshness)
	}
	if req.Dietary != nil {
		add("dietary", *req.Dietary)
	}
	if req.Allergens != nil {
		add("allergens", pq.Array(*req.Allergens))
	}
	if req.Image != nil {
		add("image", *req.Image)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}
	args = append(args, uid)

	query := "UPDATE food_listings SET "
	for i, clause := range set {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += fmt.Sprintf(" WHERE id=$%d", n)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if affected == 0 {
		return &StoreError{Op: op, Kind: KindNotFound, Hint: "listing not found"}
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const op = "delete listing"
	uid, err := uuid.Parse(id)
	if err != nil {
		// A malformed id names nothing; deletion is idempotent.
		return nil
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM food_listings WHERE id=$1`, uid)
	return classify(op, err)
}

func (r *postgresRepo) Claim(ctx context.Context, id string) error {
	const op = "claim listing"
	uid, err := parseID(op, id)
	if err != nil {
		return err
	}

	// Conditional transition: only an available listing can be claimed,
	// so two near-simultaneous claims cannot both succeed.
	res, err := r.db.ExecContext(ctx, `
		UPDATE food_listings SET status='claimed', claimed_at=NOW()
		WHERE id=$1 AND status='available'`, uid)
	if err != nil {
		return classify(op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if affected == 1 {
		return nil
	}

	var status Status
	err = r.db.QueryRowContext(ctx,
		`SELECT status FROM food_listings WHERE id=$1`, uid).Scan(&status)
	if err != nil {
		return classify(op, err)
	}
	return &StoreError{Op: op, Kind: KindConflict,
		Hint: fmt.Sprintf("listing is no longer available (status: %s)", status)}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanListing(scan func(...interface{}) error) (*Listing, error) {
	l := &Listing{}
	var claimedAt, updatedAt sql.NullTime
	err := scan(&l.ID, &l.Name, &l.Organization, &l.Description, &l.Quantity,
		&l.Location, &l.Latitude, &l.Longitude, &l.Freshness, &l.Dietary,
		pq.Array(&l.Allergens), &l.Image, &l.Status,
		&l.DatePosted, &claimedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if claimedAt.Valid {
		t := claimedAt.Time
		l.ClaimedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		l.UpdatedAt = &t
	}
	return l, nil
}

func (r *postgresRepo) queryListings(ctx context.Context, op, query string) ([]*Listing, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		l, err := scanListing(rows.Scan)
		if err != nil {
			return nil, classify(op, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return listings, nil
}
