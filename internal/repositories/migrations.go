package repositories

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_organizations.up.sql
var createOrganizationsUp string

//go:embed migrations/02_create_projects.up.sql
var createProjectsUp string

//go:embed migrations/03_create_tasks.up.sql
var createTasksUp string

//go:embed migrations/04_create_task_comments.up.sql
var createTaskCommentsUp string

// Migrate applies the schema in dependency order. Statements are idempotent,
// so a restart against an existing database is safe.
func Migrate(db *sql.DB) error {
	steps := []struct {
		name string
		sql  string
	}{
		{"organizations", createOrganizationsUp},
		{"projects", createProjectsUp},
		{"tasks", createTasksUp},
		{"task_comments", createTaskCommentsUp},
	}
	for _, step := range steps {
		if _, err := db.Exec(step.sql); err != nil {
			return fmt.Errorf("apply %s migration: %w", step.name, err)
		}
	}
	return nil
}
