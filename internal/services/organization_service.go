package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/repositories"
)

// slugConflictRetries bounds how many times Create re-allocates after losing
// a slug insert race to a concurrent request.
const slugConflictRetries = 5

// OrganizationService defines the interface for organization business logic.
// Organizations are only ever created through Create so the slug allocator
// always runs.
type OrganizationService interface {
	Create(ctx context.Context, name, contactEmail string) (*models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)
	Delete(ctx context.Context, slug string) error
}

type organizationService struct {
	repo  repositories.OrganizationRepository
	slugs SlugAllocator
}

func NewOrganizationService(repo repositories.OrganizationRepository, slugs SlugAllocator) OrganizationService {
	return &organizationService{repo: repo, slugs: slugs}
}

func (s *organizationService) Create(ctx context.Context, name, contactEmail string) (*models.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(contactEmail) == "" {
		return nil, fmt.Errorf("contact_email is required: %w", models.ErrValidation)
	}

	for attempt := 0; attempt <= slugConflictRetries; attempt++ {
		allocated, err := s.slugs.Allocate(ctx, name)
		if err != nil {
			return nil, err
		}

		org := &models.Organization{
			Name:         name,
			Slug:         allocated,
			ContactEmail: contactEmail,
		}
		err = s.repo.Store(ctx, org)
		if errors.Is(err, models.ErrConflict) {
			// Lost the insert race; the winner's slug is visible now, so the
			// next Allocate picks a fresh candidate.
			continue
		}
		if err != nil {
			return nil, err
		}
		return org, nil
	}
	return nil, fmt.Errorf("organization %q: %w", name, models.ErrSlugExhausted)
}

func (s *organizationService) List(ctx context.Context) ([]models.Organization, error) {
	return s.repo.FindAll(ctx)
}

func (s *organizationService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
