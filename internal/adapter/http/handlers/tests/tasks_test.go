package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninniks/ProjectManagement/internal/adapter/http/dto"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/handlers"
	"github.com/ninniks/ProjectManagement/internal/adapter/http/middleware"
	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
	"github.com/ninniks/ProjectManagement/pkg/apierrors"
	"github.com/ninniks/ProjectManagement/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Find(ctx context.Context, projectID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, projectID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, projectID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, projectID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, projectID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) List(ctx context.Context, projectID string, sortBy listing.Sort, page listing.Pagination) (listing.Page[domain.Task], error) {
	args := m.Called(ctx, projectID, sortBy, page)
	return args.Get(0).(listing.Page[domain.Task]), args.Error(1)
}

func (m *taskServiceMock) UpdateStatus(ctx context.Context, projectID, taskID string, target domain.TaskStatus) (bool, error) {
	args := m.Called(ctx, projectID, taskID, target)
	return args.Bool(0), args.Error(1)
}

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	group := router.Group("/api/projects", middleware.LanguageMiddleware())
	group.GET("/:project_id/tasks", handler.ListProjectTasks)
	group.GET("/:project_id/tasks/:task_id", handler.GetProjectTask)
	group.POST("/:project_id/tasks", handler.CreateProjectTask)
	group.PATCH("/:project_id/:section/:task_id", handler.UpdateProjectTask)
	group.PATCH("/:project_id/:section/:task_id/:status", handler.UpdateProjectTaskStatus)
	return router
}

func TestTaskHandler_ListProjectTasks_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	pagination := listing.NewPagination(1, 5)
	serviceMock.On("List", mock.Anything, "p1", listing.SortAlphaAsc, pagination).Return(
		listing.NewPage([]domain.Task{
			{
				ID:          "t1",
				Title:       "Draft schema",
				Description: "tables and keys",
				Slug:        "t1-draft-schema",
				Status:      domain.TaskStatusOpen,
				Difficulty:  3,
				Priority:    domain.TaskPriorityHigh,
				Assignee: &domain.User{
					ID:        "u1",
					FirstName: "Jane",
					LastName:  "Doe",
					Email:     "jane@example.com",
				},
			},
			{
				ID:         "t2",
				Title:      "Review schema",
				Slug:       "t2-review-schema",
				Status:     domain.TaskStatusBlocked,
				Difficulty: 1,
				Priority:   domain.TaskPriorityVeryHigh,
			},
		}, pagination, 2),
		nil,
	).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1/tasks?sortBy=alpha_asc", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.Page[dto.TaskItem]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	require.Equal(t, "Draft schema", got.Data[0].Title)
	require.Equal(t, "high", got.Data[0].Priority)
	require.NotNil(t, got.Data[0].Assignee)
	require.Equal(t, "Jane", got.Data[0].Assignee.FirstName)
	require.Equal(t, "very high", got.Data[1].Priority)
	require.Nil(t, got.Data[1].Assignee)
	require.Equal(t, 2, got.Total)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_ProjectMissing(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, "missing", listing.SortNone, listing.NewPagination(1, 5)).
		Return(listing.Page[domain.Task]{}, domain.ErrProjectNotFound).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Project not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetProjectTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Find", mock.Anything, "p1", "ghost").
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1/tasks/ghost", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateProjectTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "p1", domain.CreateTaskInput{
		Title:       "Draft schema",
		Description: "tables and keys",
		Difficulty:  5,
		Priority:    domain.TaskPriorityMedium,
	}).Return(domain.Task{
		ID:         "t1",
		Title:      "Draft schema",
		Slug:       "t1-draft-schema",
		Status:     domain.TaskStatusOpen,
		Difficulty: 5,
		Priority:   domain.TaskPriorityMedium,
	}, nil).Once()

	router := newTaskRouter(serviceMock)
	body := bytes.NewBufferString(`{"title":"Draft schema","description":"tables and keys","difficulty":5,"priority":"medium"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Data dto.TaskItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "t1", got.Data.ID)
	require.Equal(t, "open", got.Data.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateProjectTask_InvalidDifficulty(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	body := bytes.NewBufferString(`{"title":"t","description":"d","difficulty":4,"priority":"low"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	serviceMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateProjectTask_ProjectMissing(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "missing", mock.Anything).
		Return(domain.Task{}, domain.ErrProjectNotFound).Once()

	router := newTaskRouter(serviceMock)
	body := bytes.NewBufferString(`{"title":"t","description":"d","difficulty":1,"priority":"low"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects/missing/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Project not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateProjectTask_UnknownAssignee(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "p1", mock.Anything).
		Return(domain.Task{}, domain.ErrUserNotFound).Once()

	router := newTaskRouter(serviceMock)
	body := bytes.NewBufferString(`{"title":"t","description":"d","difficulty":1,"priority":"low","assignee":"5f0c3a0e-9d5f-4a66-9a25-01a1f6a3cafe"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/projects/p1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The assignee does not exist.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateProjectTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	title := "Renamed"
	serviceMock.On("Update", mock.Anything, "p1", "t1", domain.UpdateTaskInput{Title: &title}).
		Return(domain.Task{
			ID:     "t1",
			Title:  "Renamed",
			Slug:   "t1-renamed",
			Status: domain.TaskStatusOpen,
		}, nil).Once()

	router := newTaskRouter(serviceMock)
	body := bytes.NewBufferString(`{"title":"Renamed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/tasks/t1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Data dto.TaskItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "t1-renamed", got.Data.Slug)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateProjectTask_WrongSection(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	body := bytes.NewBufferString(`{"title":"Renamed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/chores/t1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateProjectTaskStatus_Accepted(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateStatus", mock.Anything, "p1", "t1", domain.TaskStatusClosed).
		Return(true, nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/tasks/t1/closed", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateProjectTaskStatus_RefusedByGuard(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateStatus", mock.Anything, "p1", "t1", domain.TaskStatusBlocked).
		Return(false, nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/tasks/t1/blocked", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateProjectTaskStatus_UnknownStatusSegment(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/projects/p1/tasks/t1/paused", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_ListProjectTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, "p1", listing.SortNone, listing.NewPagination(1, 5)).
		Return(listing.Page[domain.Task]{}, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	serviceMock.AssertExpectations(t)
}
