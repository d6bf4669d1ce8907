package models

import "time"

// Organization is the tenant boundary. Projects, tasks and comments all hang
// off an organization and are removed with it.
type Organization struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}
