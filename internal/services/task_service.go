package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/repositories"
)

// CreateTaskInput carries the createTask arguments. Nil optional fields take
// their defaults: empty description and assignee, TODO status, no due date.
type CreateTaskInput struct {
	Title         string
	Description   *string
	Status        *models.TaskStatus
	AssigneeEmail *string
	DueDate       *time.Time
}

type TaskService interface {
	Create(ctx context.Context, projectID int64, in CreateTaskInput) (*models.Task, error)
	Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.TaskWithComments, error)
	AddComment(ctx context.Context, taskID int64, content, authorEmail string) (*models.TaskComment, error)
}

type taskService struct {
	tasks    repositories.TaskRepository
	projects repositories.ProjectRepository
	comments repositories.TaskCommentRepository
}

func NewTaskService(
	tasks repositories.TaskRepository,
	projects repositories.ProjectRepository,
	comments repositories.TaskCommentRepository,
) TaskService {
	return &taskService{tasks: tasks, projects: projects, comments: comments}
}

func (s *taskService) Create(ctx context.Context, projectID int64, in CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", models.ErrValidation)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("unknown task status %q: %w", *in.Status, models.ErrValidation)
	}

	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID: projectID,
		Title:     in.Title,
		Status:    models.TaskTodo,
		DueDate:   in.DueDate,
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssigneeEmail != nil {
		task.AssigneeEmail = *in.AssigneeEmail
	}
	if in.Status != nil {
		task.Status = *in.Status
	}

	if err := s.tasks.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies partial-update semantics: only non-nil patch fields change.
// An all-nil patch is a no-op that returns the task unchanged.
func (s *taskService) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("unknown task status %q: %w", *patch.Status, models.ErrValidation)
	}
	return s.tasks.Update(ctx, id, patch)
}

// ListByProject returns the project's tasks, newest first, each with its
// comment thread in conversation order. A missing project yields an empty
// list, matching the lenient read policy of project listing.
func (s *taskService) ListByProject(ctx context.Context, projectID int64) ([]models.TaskWithComments, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return []models.TaskWithComments{}, nil
		}
		return nil, err
	}

	tasks, err := s.tasks.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]models.TaskWithComments, 0, len(tasks))
	for _, t := range tasks {
		comments, err := s.comments.FindByTask(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []models.TaskComment{}
		}
		out = append(out, models.TaskWithComments{Task: t, Comments: comments})
	}
	return out, nil
}

// AddComment stores an immutable comment on the task. Blank content is
// allowed here; rejecting it is left to outer validation layers.
func (s *taskService) AddComment(ctx context.Context, taskID int64, content, authorEmail string) (*models.TaskComment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		TaskID:      taskID,
		Content:     content,
		AuthorEmail: authorEmail,
	}
	if err := s.comments.Store(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
