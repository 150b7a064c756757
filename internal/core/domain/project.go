package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusOpen   ProjectStatus = "open"
	ProjectStatusClosed ProjectStatus = "closed"
)

// ParseProjectStatus maps a URL status segment to its enum value.
func ParseProjectStatus(value string) (ProjectStatus, bool) {
	switch ProjectStatus(value) {
	case ProjectStatusOpen, ProjectStatusClosed:
		return ProjectStatus(value), true
	}
	return "", false
}

// Project is an immutable snapshot of a project record. TasksCount and
// CompletedTasksCount are aggregated at query time, never stored.
type Project struct {
	ID                  string
	Title               string
	Description         string
	Slug                string
	Status              ProjectStatus
	TasksCount          int
	CompletedTasksCount int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CreateProjectInput struct {
	Title       string
	Description string
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
}
