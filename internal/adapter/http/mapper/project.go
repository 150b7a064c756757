package mapper

import (
	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		ID:                  project.ID,
		Title:               project.Title,
		Description:         project.Description,
		Slug:                project.Slug,
		Status:              string(project.Status),
		TasksCount:          project.TasksCount,
		CompletedTasksCount: project.CompletedTasksCount,
	}
}

func ToProjectPage(page listing.Page[domain.Project]) dto.Page[dto.ProjectItem] {
	return dto.Page[dto.ProjectItem]{
		Data:       ToProjectItems(page.Data),
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
