package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/mapper"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/middleware"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/validation"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/ports"
	"github.com/ninniks/ProjectManagement/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, pagination, err := validation.BuildProjectListQuery(
		c.Query("sortBy"),
		c.Query("withClosed"),
		c.Query("onlyClosed"),
		c.Query("page"),
		c.Query("perPage"),
	)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidFilter, lang),
		)
		return
	}

	page, err := h.projectService.List(c.Request.Context(), filter, pagination)
	if err != nil {
		zap.L().Error("failed to list projects", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectPage(page))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")

	project, err := h.projectService.Find(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch project", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListProjects, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mapper.ToProjectItem(project)})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateProjectInput(req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create project", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateProject, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": mapper.ToProjectItem(project)})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")

	var req dto.UpdateProjectRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidProjectPayload, lang),
		)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), projectID, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update project", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProject, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mapper.ToProjectItem(project)})
}

// UpdateProjectStatus serves PATCH /projects/:project_id/:section where the
// section segment is the requested status. Anything outside the status
// vocabulary is an unknown route.
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")

	target, ok := domain.ParseProjectStatus(c.Param("section"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	accepted, err := h.projectService.UpdateStatus(c.Request.Context(), projectID, target)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update project status", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateProjectStatus, lang),
		)
		return
	}

	if !accepted {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgProjectTransitionRefused, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
