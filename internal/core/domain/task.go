package domain

import "time"

type TaskStatus string

const (
	TaskStatusOpen    TaskStatus = "open"
	TaskStatusBlocked TaskStatus = "blocked"
	TaskStatusClosed  TaskStatus = "closed"
)

func ParseTaskStatus(value string) (TaskStatus, bool) {
	switch TaskStatus(value) {
	case TaskStatusOpen, TaskStatusBlocked, TaskStatusClosed:
		return TaskStatus(value), true
	}
	return "", false
}

type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityVeryHigh TaskPriority = "very high"
)

func ParseTaskPriority(value string) (TaskPriority, bool) {
	switch TaskPriority(value) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityVeryHigh:
		return TaskPriority(value), true
	}
	return "", false
}

// Difficulty follows a fixed ordinal scale.
var taskDifficulties = map[int]struct{}{
	1: {}, 2: {}, 3: {}, 5: {}, 8: {}, 13: {}, 21: {},
}

func IsValidDifficulty(value int) bool {
	_, ok := taskDifficulties[value]
	return ok
}

// Task is an immutable snapshot of a task record. ProjectID is set once at
// creation and never reassigned.
type Task struct {
	ID          string
	Title       string
	Description string
	Slug        string
	Difficulty  int
	Priority    TaskPriority
	Status      TaskStatus
	Assignee    *User
	ProjectID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	Difficulty  int
	Priority    TaskPriority
	AssigneeID  *string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Difficulty  *int
	Priority    *TaskPriority
	AssigneeID  *string
}
