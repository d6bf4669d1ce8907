package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rpspoonia/project-management-system/internal/models"
	"github.com/rpspoonia/project-management-system/internal/repositories"
)

// CreateProjectInput carries the createProject arguments. Nil optional
// fields take their defaults: empty description, ACTIVE status, no due date.
type CreateProjectInput struct {
	Name        string
	Description *string
	Status      *models.ProjectStatus
	DueDate     *time.Time
}

type ProjectService interface {
	Create(ctx context.Context, organizationSlug string, in CreateProjectInput) (*models.Project, error)
	Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	ListByOrganization(ctx context.Context, organizationSlug string) ([]models.ProjectWithStats, error)
}

type projectService struct {
	projects repositories.ProjectRepository
	orgs     repositories.OrganizationRepository
	tasks    repositories.TaskRepository
}

func NewProjectService(
	projects repositories.ProjectRepository,
	orgs repositories.OrganizationRepository,
	tasks repositories.TaskRepository,
) ProjectService {
	return &projectService{projects: projects, orgs: orgs, tasks: tasks}
}

func (s *projectService) Create(ctx context.Context, organizationSlug string, in CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("name is required: %w", models.ErrValidation)
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("unknown project status %q: %w", *in.Status, models.ErrValidation)
	}

	org, err := s.orgs.FindBySlug(ctx, organizationSlug)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		OrganizationID: org.ID,
		Name:           in.Name,
		Status:         models.ProjectActive,
		DueDate:        in.DueDate,
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		project.Status = *in.Status
	}

	if err := s.projects.Store(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies partial-update semantics: only non-nil patch fields change.
// An all-nil patch is a no-op that returns the project unchanged.
func (s *projectService) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("unknown project status %q: %w", *patch.Status, models.ErrValidation)
	}
	return s.projects.Update(ctx, id, patch)
}

// ListByOrganization returns the organization's projects with their computed
// task stats. A missing organization yields an empty list, not an error;
// reads are deliberately lenient where mutations are strict.
func (s *projectService) ListByOrganization(ctx context.Context, organizationSlug string) ([]models.ProjectWithStats, error) {
	org, err := s.orgs.FindBySlug(ctx, organizationSlug)
	if errors.Is(err, models.ErrNotFound) {
		return []models.ProjectWithStats{}, nil
	}
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.FindByOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProjectWithStats, 0, len(projects))
	for _, p := range projects {
		total, done, err := s.tasks.CountByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.ProjectWithStats{
			Project: p,
			ProjectStats: models.ProjectStats{
				TaskCount:          total,
				CompletedTaskCount: done,
				CompletionRate:     completionRate(total, done),
			},
		})
	}
	return out, nil
}

// completionRate is the percentage of done tasks rounded to two decimals.
// Zero tasks means 0.0 by policy, not an error.
func completionRate(total, done int) float64 {
	if total == 0 {
		return 0.0
	}
	rate := float64(done) / float64(total) * 100
	return math.Round(rate*100) / 100
}
