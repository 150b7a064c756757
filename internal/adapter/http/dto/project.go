package dto

// ProjectItem carries no timestamps and no raw foreign keys; the counts are
// derived server-side.
type ProjectItem struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Slug                string `json:"slug"`
	Status              string `json:"status"`
	TasksCount          int    `json:"tasks_count"`
	CompletedTasksCount int    `json:"completed_tasks_count"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,max=50"`
	Description string `json:"description" binding:"required,max=256"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=256"`
}
