package service

import (
	"context"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
	"github.com/ninniks/ProjectManagement/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) Find(ctx context.Context, projectID string) (domain.Project, error) {
	return s.projectRepository.Find(ctx, projectID)
}

func (s *ProjectService) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	return s.projectRepository.Create(ctx, input)
}

func (s *ProjectService) Update(ctx context.Context, projectID string, input domain.UpdateProjectInput) (domain.Project, error) {
	return s.projectRepository.Update(ctx, projectID, input)
}

func (s *ProjectService) List(ctx context.Context, filter listing.Filter, page listing.Pagination) (listing.Page[domain.Project], error) {
	return s.projectRepository.List(ctx, filter.Normalize(), page)
}

func (s *ProjectService) UpdateStatus(ctx context.Context, projectID string, target domain.ProjectStatus) (bool, error) {
	return s.projectRepository.TransitionStatus(ctx, projectID, target)
}

var _ ports.ProjectService = (*ProjectService)(nil)
