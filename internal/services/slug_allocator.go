package services

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/repositories"
)

// defaultMaxSlugAttempts bounds the probe loop so a pathological slug
// namespace cannot spin forever.
const defaultMaxSlugAttempts = 1000

type SlugAllocator interface {
	Allocate(ctx context.Context, name string) (string, error)
}

type slugAllocator struct {
	orgs        repositories.OrganizationRepository
	maxAttempts int
}

func NewSlugAllocator(orgs repositories.OrganizationRepository, maxAttempts int) SlugAllocator {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxSlugAttempts
	}
	return &slugAllocator{orgs: orgs, maxAttempts: maxAttempts}
}

// Allocate returns the first candidate unused at call time: the normalized
// base, then base-1, base-2, ... in order. The result is advisory; the
// organizations table's unique constraint is the final arbiter and callers
// retry with a fresh candidate on an insert conflict.
func (a *slugAllocator) Allocate(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", fmt.Errorf("name %q yields an empty slug: %w", name, models.ErrValidation)
	}

	candidate := base
	for i := 1; i <= a.maxAttempts; i++ {
		exists, err := a.orgs.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("slug %q: %w", base, models.ErrSlugExhausted)
}
