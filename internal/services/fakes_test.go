package services_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rpspoonia/project-management-system/internal/models"
)

// In-memory repository fakes. IDs are monotonic, so sorting by ID stands in
// for sorting by creation time.

type fakeOrgRepo struct {
	mu     sync.RWMutex
	nextID int64
	orgs   map[int64]models.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{nextID: 1, orgs: make(map[int64]models.Organization)}
}

func (r *fakeOrgRepo) Store(_ context.Context, org *models.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orgs {
		if o.Slug == org.Slug {
			return fmt.Errorf("organization slug %q: %w", org.Slug, models.ErrConflict)
		}
	}
	org.ID = r.nextID
	r.nextID++
	org.CreatedAt = time.Now()
	r.orgs[org.ID] = *org
	return nil
}

func (r *fakeOrgRepo) FindBySlug(_ context.Context, slug string) (*models.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orgs {
		if o.Slug == slug {
			out := o
			return &out, nil
		}
	}
	return nil, fmt.Errorf("organization %q: %w", slug, models.ErrNotFound)
}

func (r *fakeOrgRepo) FindAll(_ context.Context) ([]models.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Organization, 0, len(r.orgs))
	for _, o := range r.orgs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeOrgRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orgs {
		if o.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrgRepo) Delete(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.orgs {
		if o.Slug == slug {
			delete(r.orgs, id)
			return nil
		}
	}
	return fmt.Errorf("organization %q: %w", slug, models.ErrNotFound)
}

type fakeProjectRepo struct {
	mu       sync.RWMutex
	nextID   int64
	projects map[int64]models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{nextID: 1, projects: make(map[int64]models.Project)}
}

func (r *fakeProjectRepo) nameTaken(orgID int64, name string, excludeID int64) bool {
	for _, p := range r.projects {
		if p.OrganizationID == orgID && p.Name == name && p.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeProjectRepo) Store(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(project.OrganizationID, project.Name, 0) {
		return fmt.Errorf("project %q in organization %d: %w",
			project.Name, project.OrganizationID, models.ErrConflict)
	}
	project.ID = r.nextID
	r.nextID++
	project.CreatedAt = time.Now()
	r.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id int64) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
	}
	out := p
	return &out, nil
}

func (r *fakeProjectRepo) FindByOrganization(_ context.Context, organizationID int64) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.OrganizationID == organizationID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
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
	if r.nameTaken(p.OrganizationID, p.Name, p.ID) {
		return nil, fmt.Errorf("project %q in organization %d: %w",
			p.Name, p.OrganizationID, models.ErrConflict)
	}
	r.projects[id] = p
	out := p
	return &out, nil
}

type fakeTaskRepo struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: make(map[int64]models.Task)}
}

func (r *fakeTaskRepo) Store(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	out := t
	return &out, nil
}

func (r *fakeTaskRepo) FindByProject(_ context.Context, projectID int64) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Task
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
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
	r.tasks[id] = t
	out := t
	return &out, nil
}

func (r *fakeTaskRepo) CountByProject(_ context.Context, projectID int64) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total, done int
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			total++
			if t.Status == models.TaskDone {
				done++
			}
		}
	}
	return total, done, nil
}

type fakeCommentRepo struct {
	mu       sync.RWMutex
	nextID   int64
	comments map[int64]models.TaskComment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1, comments: make(map[int64]models.TaskComment)}
}

func (r *fakeCommentRepo) Store(_ context.Context, comment *models.TaskComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) FindByTask(_ context.Context, taskID int64) ([]models.TaskComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.TaskComment
	for _, c := range r.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
