package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/services"
)

func mustStoreOrg(t *testing.T, repo *fakeOrgRepo, name, slug string) {
	t.Helper()
	org := &models.Organization{Name: name, Slug: slug, ContactEmail: "ops@example.com"}
	if err := repo.Store(context.Background(), org); err != nil {
		t.Fatalf("failed to prepare organization: %v", err)
	}
}

func TestSlugAllocator_NormalizesName(t *testing.T) {
	t.Parallel()

	alloc := services.NewSlugAllocator(newFakeOrgRepo(), 0)

	got, err := alloc.Allocate(context.Background(), "Acme Inc.")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "acme-inc" {
		t.Fatalf("expected slug %q, got %q", "acme-inc", got)
	}
}

func TestSlugAllocator_SuffixesTakenBase(t *testing.T) {
	t.Parallel()

	repo := newFakeOrgRepo()
	alloc := services.NewSlugAllocator(repo, 0)

	mustStoreOrg(t, repo, "Acme Inc.", "acme-inc")

	got, err := alloc.Allocate(context.Background(), "Acme Inc.")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "acme-inc-1" {
		t.Fatalf("expected slug %q, got %q", "acme-inc-1", got)
	}

	mustStoreOrg(t, repo, "Acme Inc.", got)

	got, err = alloc.Allocate(context.Background(), "Acme Inc.")
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "acme-inc-2" {
		t.Fatalf("expected slug %q, got %q", "acme-inc-2", got)
	}
}

func TestSlugAllocator_Exhausted(t *testing.T) {
	t.Parallel()

	repo := newFakeOrgRepo()
	alloc := services.NewSlugAllocator(repo, 3)

	mustStoreOrg(t, repo, "Acme", "acme")
	for i := 1; i <= 2; i++ {
		mustStoreOrg(t, repo, "Acme", fmt.Sprintf("acme-%d", i))
	}

	_, err := alloc.Allocate(context.Background(), "Acme")
	if !errors.Is(err, models.ErrSlugExhausted) {
		t.Fatalf("expected ErrSlugExhausted, got %v", err)
	}
}

func TestSlugAllocator_EmptyBase(t *testing.T) {
	t.Parallel()

	alloc := services.NewSlugAllocator(newFakeOrgRepo(), 0)

	_, err := alloc.Allocate(context.Background(), "!!!")
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
