package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task represents an actionable item inside a project. Titles are not unique.
type Task struct {
	ID            int64      `json:"id"`
	ProjectID     int64      `json:"project_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	AssigneeEmail string     `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TaskWithComments is the task read shape: the task plus its full comment
// thread in conversation order.
type TaskWithComments struct {
	Task
	Comments []TaskComment `json:"comments"`
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *TaskStatus
	AssigneeEmail *string
	DueDate       *time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.AssigneeEmail == nil && p.DueDate == nil
}
