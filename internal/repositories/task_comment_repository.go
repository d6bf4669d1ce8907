package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpspoonia/project-management-system/internal/models"
)

type TaskCommentRepository interface {
	Store(ctx context.Context, comment *models.TaskComment) error
	FindByTask(ctx context.Context, taskID int64) ([]models.TaskComment, error)
}

type taskCommentRepository struct {
	db *sql.DB
}

func NewTaskCommentRepository(db *sql.DB) TaskCommentRepository {
	return &taskCommentRepository{db: db}
}

func (r *taskCommentRepository) Store(ctx context.Context, comment *models.TaskComment) error {
	const query = `
		INSERT INTO task_comments (task_id, content, author_email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		comment.TaskID, comment.Content, comment.AuthorEmail,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert task comment: %w", err)
	}
	return nil
}

// FindByTask returns the comment thread in conversation order.
func (r *taskCommentRepository) FindByTask(ctx context.Context, taskID int64) ([]models.TaskComment, error) {
	const query = `
		SELECT id, task_id, content, author_email, created_at
		FROM task_comments WHERE task_id = $1
		ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.TaskComment
	for rows.Next() {
		var c models.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Content, &c.AuthorEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
