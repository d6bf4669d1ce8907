package models

import "time"

// ProjectStatus defines the possible statuses for a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project represents a unit of work inside an organization. The
// (organization_id, name) pair is unique.
type Project struct {
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ProjectStats are derived from the project's current tasks at read time.
// They are never stored.
type ProjectStats struct {
	TaskCount          int     `json:"task_count"`
	CompletedTaskCount int     `json:"completed_task_count"`
	CompletionRate     float64 `json:"completion_rate"`
}

type ProjectWithStats struct {
	Project
	ProjectStats
}

// ProjectPatch carries a partial update. Nil fields are left unchanged;
// there is no way to clear a set due date through a patch.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	DueDate     *time.Time
}

func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil && p.DueDate == nil
}
