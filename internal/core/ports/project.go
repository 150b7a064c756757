package ports

import (
	"context"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
)

type ProjectRepository interface {
	Find(ctx context.Context, projectID string) (domain.Project, error)
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	Update(ctx context.Context, projectID string, input domain.UpdateProjectInput) (domain.Project, error)
	List(ctx context.Context, filter listing.Filter, page listing.Pagination) (listing.Page[domain.Project], error)
	// TransitionStatus runs the lifecycle guard and the write in one
	// transaction. false means the guard refused; the record is untouched.
	TransitionStatus(ctx context.Context, projectID string, target domain.ProjectStatus) (bool, error)
}

type ProjectService interface {
	Find(ctx context.Context, projectID string) (domain.Project, error)
	Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	Update(ctx context.Context, projectID string, input domain.UpdateProjectInput) (domain.Project, error)
	List(ctx context.Context, filter listing.Filter, page listing.Pagination) (listing.Page[domain.Project], error)
	UpdateStatus(ctx context.Context, projectID string, target domain.ProjectStatus) (bool, error)
}
