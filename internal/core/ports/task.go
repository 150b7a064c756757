package ports

import (
	"context"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
)

type TaskRepository interface {
	Find(ctx context.Context, projectID, taskID string) (domain.Task, error)
	Create(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, projectID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	List(ctx context.Context, projectID string, sortBy listing.Sort, page listing.Pagination) (listing.Page[domain.Task], error)
	TransitionStatus(ctx context.Context, projectID, taskID string, target domain.TaskStatus) (bool, error)
}

type TaskService interface {
	Find(ctx context.Context, projectID, taskID string) (domain.Task, error)
	Create(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, projectID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	List(ctx context.Context, projectID string, sortBy listing.Sort, page listing.Pagination) (listing.Page[domain.Task], error)
	UpdateStatus(ctx context.Context, projectID, taskID string, target domain.TaskStatus) (bool, error)
}
