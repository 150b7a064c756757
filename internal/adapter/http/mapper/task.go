package mapper

import (
	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Slug:        task.Slug,
		Status:      string(task.Status),
		Difficulty:  task.Difficulty,
		Priority:    string(task.Priority),
	}

	if task.Assignee != nil {
		assignee := ToUserItem(*task.Assignee)
		item.Assignee = &assignee
	}

	return item
}

func ToTaskPage(page listing.Page[domain.Task]) dto.Page[dto.TaskItem] {
	return dto.Page[dto.TaskItem]{
		Data:       ToTaskItems(page.Data),
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
