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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")

	sortBy, pagination, err := validation.BuildTaskListQuery(
		c.Query("sortBy"),
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

	page, err := h.taskService.List(c.Request.Context(), projectID, sortBy, pagination)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list tasks", zap.String("project_id", projectID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPage(page))
}

func (h *TaskHandler) GetProjectTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")

	task, err := h.taskService.Find(c.Request.Context(), projectID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to fetch task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mapper.ToTaskItem(task)})
}

func (h *TaskHandler) CreateProjectTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	projectID := c.Param("project_id")

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), projectID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgAssigneeNotFound, lang),
			)
		default:
			zap.L().Error("failed to create task", zap.String("project_id", projectID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": mapper.ToTaskItem(task)})
}

func (h *TaskHandler) UpdateProjectTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	if !h.requireTasksSection(c) {
		return
	}
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")

	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), projectID, taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgAssigneeNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": mapper.ToTaskItem(task)})
}

func (h *TaskHandler) UpdateProjectTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)
	if !h.requireTasksSection(c) {
		return
	}
	projectID := c.Param("project_id")
	taskID := c.Param("task_id")

	target, ok := domain.ParseTaskStatus(c.Param("status"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	accepted, err := h.taskService.UpdateStatus(c.Request.Context(), projectID, taskID, target)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task status", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTaskStatus, lang),
		)
		return
	}

	if !accepted {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTaskTransitionRefused, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// The PATCH routes under /projects/:project_id share a wildcard for their
// second segment (see RegisterRoutes), so task handlers confirm it really is
// the tasks subtree before doing any work.
func (h *TaskHandler) requireTasksSection(c *gin.Context) bool {
	if c.Param("section") != "tasks" {
		c.Status(http.StatusNotFound)
		return false
	}
	return true
}
