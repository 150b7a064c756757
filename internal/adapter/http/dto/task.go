package dto

type TaskItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	Difficulty  int       `json:"difficulty"`
	Priority    string    `json:"priority"`
	Assignee    *UserItem `json:"assignee"`
}

// Difficulty and priority carry custom vocabularies ("very high" holds a
// space), so their enum checks live in the validation package rather than in
// binding tags.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=50"`
	Description string  `json:"description" binding:"required,max=256"`
	Difficulty  *int    `json:"difficulty" binding:"required"`
	Priority    *string `json:"priority" binding:"required"`
	Assignee    *string `json:"assignee" binding:"omitempty,uuid"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=256"`
	Difficulty  *int    `json:"difficulty"`
	Priority    *string `json:"priority"`
	Assignee    *string `json:"assignee" binding:"omitempty,uuid"`
}
