package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpspoonia/project-management-system/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindByProject(ctx context.Context, projectID int64) ([]models.Task, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)
	CountByProject(ctx context.Context, projectID int64) (total, done int, err error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const query = `
		INSERT INTO tasks (project_id, title, description, status, assignee_email, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		task.ProjectID, task.Title, task.Description, task.Status, task.AssigneeEmail, task.DueDate,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	const query = `
		SELECT id, project_id, title, description, status, assignee_email, due_date, created_at
		FROM tasks WHERE id = $1`
	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status,
		&t.AssigneeEmail, &t.DueDate, &t.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) FindByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	const query = `
		SELECT id, project_id, title, description, status, assignee_email, due_date, created_at
		FROM tasks WHERE project_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status,
			&t.AssigneeEmail, &t.DueDate, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update applies the patch inside a transaction, same contract as the
// project repository's Update.
func (r *taskRepository) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	t := &models.Task{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, project_id, title, description, status, assignee_email, due_date, created_at
		FROM tasks WHERE id = $1 FOR UPDATE`, id,
	).Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status,
		&t.AssigneeEmail, &t.DueDate, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.AssigneeEmail != nil {
		t.AssigneeEmail = *patch.AssigneeEmail
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE tasks SET title=$1, description=$2, status=$3, assignee_email=$4, due_date=$5
		WHERE id=$6`,
		t.Title, t.Description, t.Status, t.AssigneeEmail, t.DueDate, t.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// CountByProject returns the total task count and the count of tasks with
// status DONE for one project.
func (r *taskRepository) CountByProject(ctx context.Context, projectID int64) (int, int, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'DONE')
		FROM tasks WHERE project_id = $1`
	var total, done int
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&total, &done); err != nil {
		return 0, 0, err
	}
	return total, done, nil
}
