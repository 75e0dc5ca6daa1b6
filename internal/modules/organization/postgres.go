package organization

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateOrganization(ctx context.Context, o *Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, contact_email, address, description)
		VALUES ($1,$2,$3,$4,$5)`,
		o.ID, o.Name, o.ContactEmail, o.Address, o.Description)
	return err
}

func (r *postgresRepo) GetOrganizationByID(ctx context.Context, id string) (*Organization, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o := &Organization{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, contact_email, address, description, created_at, updated_at
		FROM organizations WHERE id=$1`, uid).Scan(
		&o.ID, &o.Name, &o.ContactEmail, &o.Address, &o.Description,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListOrganizations(ctx context.Context) ([]*Organization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, contact_email, address, description, created_at, updated_at
		FROM organizations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*Organization
	for rows.Next() {
		o := &Organization{}
		if err := rows.Scan(&o.ID, &o.Name, &o.ContactEmail, &o.Address,
			&o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
