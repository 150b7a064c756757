package service

import (
	"context"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
	"github.com/ninniks/ProjectManagement/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
	userRepository    ports.UserRepository
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	projectRepository ports.ProjectRepository,
	userRepository ports.UserRepository,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
		userRepository:    userRepository,
	}
}

func (s *TaskService) Find(ctx context.Context, projectID, taskID string) (domain.Task, error) {
	return s.taskRepository.Find(ctx, projectID, taskID)
}

// Create checks the owning project first so a missing project surfaces as
// domain.ErrProjectNotFound, never as a task error.
func (s *TaskService) Create(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.projectRepository.Find(ctx, projectID); err != nil {
		return domain.Task{}, err
	}

	if err := s.checkAssignee(ctx, input.AssigneeID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Create(ctx, projectID, input)
}

func (s *TaskService) Update(ctx context.Context, projectID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if err := s.checkAssignee(ctx, input.AssigneeID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Update(ctx, projectID, taskID, input)
}

func (s *TaskService) List(ctx context.Context, projectID string, sortBy listing.Sort, page listing.Pagination) (listing.Page[domain.Task], error) {
	if _, err := s.projectRepository.Find(ctx, projectID); err != nil {
		return listing.Page[domain.Task]{}, err
	}

	return s.taskRepository.List(ctx, projectID, sortBy, page)
}

func (s *TaskService) UpdateStatus(ctx context.Context, projectID, taskID string, target domain.TaskStatus) (bool, error) {
	return s.taskRepository.TransitionStatus(ctx, projectID, taskID, target)
}

func (s *TaskService) checkAssignee(ctx context.Context, assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}
	_, err := s.userRepository.FindByID(ctx, *assigneeID)
	return err
}

var _ ports.TaskService = (*TaskService)(nil)
