package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	return domain.CreateProjectInput{
		Title:       title,
		Description: description,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "description") {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var input domain.UpdateProjectInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		value := strings.TrimSpace(*req.Description)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		input.Description = &value
	}

	return input, nil
}
