package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.Difficulty == nil || !domain.IsValidDifficulty(*req.Difficulty) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	priority, ok := domain.ParseTaskPriority(*req.Priority)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: description,
		Difficulty:  *req.Difficulty,
		Priority:    priority,
	}

	if req.Assignee != nil {
		if *req.Assignee == "" {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.AssigneeID = req.Assignee
	}

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Description)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Description = &value
	}

	if hasJSONField(raw, "difficulty") {
		if req.Difficulty == nil || !domain.IsValidDifficulty(*req.Difficulty) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Difficulty = req.Difficulty
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority, ok := domain.ParseTaskPriority(*req.Priority)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Priority = &priority
	}

	if hasJSONField(raw, "assignee") {
		if req.Assignee == nil || *req.Assignee == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.AssigneeID = req.Assignee
	}

	return input, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "difficulty") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "assignee")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
