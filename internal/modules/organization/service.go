package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	RegisterOrganization(ctx context.Context, name, contactEmail, address, description string) (*Organization, error)
	GetOrganization(ctx context.Context, id string) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]*Organization, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterOrganization(ctx context.Context, name, contactEmail, address, description string) (*Organization, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	o := &Organization{
		ID:           uuid.New(),
		Name:         name,
		ContactEmail: contactEmail,
		Address:      address,
		Description:  description,
	}

	if err := s.repo.CreateOrganization(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *service) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	return s.repo.GetOrganizationByID(ctx, id)
}

func (s *service) ListOrganizations(ctx context.Context) ([]*Organization, error) {
	return s.repo.ListOrganizations(ctx)
}
