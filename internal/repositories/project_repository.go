package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpspoonia/project-management-system/internal/models"
)

type ProjectRepository interface {
	Store(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindByOrganization(ctx context.Context, organizationID int64) ([]models.Project, error)
	Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Store(ctx context.Context, project *models.Project) error {
	const query = `
		INSERT INTO projects (organization_id, name, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		project.OrganizationID, project.Name, project.Description, project.Status, project.DueDate,
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("project %q in organization %d: %w",
				project.Name, project.OrganizationID, models.ErrConflict)
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	const query = `
		SELECT id, organization_id, name, description, status, due_date, created_at
		FROM projects WHERE id = $1`
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *projectRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]models.Project, error) {
	const query = `
		SELECT id, organization_id, name, description, status, due_date, created_at
		FROM projects WHERE organization_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update applies the patch inside a transaction so the read-modify-write is
// atomic with respect to concurrent updates of the same row. A rename that
// collides with a sibling project surfaces as ErrConflict.
func (r *projectRepository) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p := &models.Project{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, organization_id, name, description, status, due_date, created_at
		FROM projects WHERE id = $1 FOR UPDATE`, id,
	).Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Description, &p.Status, &p.DueDate, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.DueDate != nil {
		p.DueDate = patch.DueDate
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE projects SET name=$1, description=$2, status=$3, due_date=$4
		WHERE id=$5`,
		p.Name, p.Description, p.Status, p.DueDate, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("project %q in organization %d: %w",
				p.Name, p.OrganizationID, models.ErrConflict)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}
