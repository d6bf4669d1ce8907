package models

import "time"

// TaskComment is an append-only annotation on a task. Comments are immutable
// once stored; there is no update or delete path.
type TaskComment struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"task_id"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}
