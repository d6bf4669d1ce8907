package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpspoonia/project-management-system/internal/models"
)

type OrganizationRepository interface {
	Store(ctx context.Context, org *models.Organization) error
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)
	FindAll(ctx context.Context) ([]models.Organization, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, slug string) error
}

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Store inserts the organization and fills in its id and timestamp. A taken
// slug surfaces as ErrConflict so the caller can retry with the next
// candidate.
func (r *organizationRepository) Store(ctx context.Context, org *models.Organization) error {
	const query = `
		INSERT INTO organizations (name, slug, contact_email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, org.Name, org.Slug, org.ContactEmail).
		Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("organization slug %q: %w", org.Slug, models.ErrConflict)
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *organizationRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	const query = `
		SELECT id, name, slug, contact_email, created_at
		FROM organizations WHERE slug = $1`
	org := &models.Organization{}
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&org.ID, &org.Name, &org.Slug, &org.ContactEmail, &org.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("organization %q: %w", slug, models.ErrNotFound)
		}
		return nil, err
	}
	return org, nil
}

func (r *organizationRepository) FindAll(ctx context.Context) ([]models.Organization, error) {
	const query = `
		SELECT id, name, slug, contact_email, created_at
		FROM organizations ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []models.Organization
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.ContactEmail, &o.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM organizations WHERE slug = $1)`, slug,
	).Scan(&exists)
	return exists, err
}

// Delete removes the organization; projects, tasks and comments go with it
// through the schema's ON DELETE CASCADE chain.
func (r *organizationRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("organization %q: %w", slug, models.ErrNotFound)
	}
	return nil
}
