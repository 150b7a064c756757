package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ninniks/ProjectManagement/internal/core/domain"
	"github.com/ninniks/ProjectManagement/internal/core/lifecycle"
	"github.com/ninniks/ProjectManagement/internal/core/listing"
	"github.com/ninniks/ProjectManagement/internal/core/ports"
	"github.com/ninniks/ProjectManagement/pkg/sluggen"
)

const selectTaskQuery = `
SELECT
  t.id,
  t.title,
  t.description,
  t.slug,
  t.difficulty,
  t.priority,
  t.status,
  t.project_id,
  t.created_at,
  t.updated_at,
  u.id         AS assignee_id,
  u.first_name AS assignee_first_name,
  u.last_name  AS assignee_last_name,
  u.email      AS assignee_email
FROM tasks t
LEFT JOIN users u ON u.id = t.assignee_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                string         `db:"id"`
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	Slug              string         `db:"slug"`
	Difficulty        int            `db:"difficulty"`
	Priority          string         `db:"priority"`
	Status            string         `db:"status"`
	ProjectID         string         `db:"project_id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	AssigneeID        sql.NullString `db:"assignee_id"`
	AssigneeFirstName sql.NullString `db:"assignee_first_name"`
	AssigneeLastName  sql.NullString `db:"assignee_last_name"`
	AssigneeEmail     sql.NullString `db:"assignee_email"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Find scopes the lookup by owning project: a task id that exists under a
// different project is still a miss.
func (r *TaskRepository) Find(ctx context.Context, projectID, taskID string) (domain.Task, error) {
	query := selectTaskQuery + "WHERE t.id = ? AND t.project_id = ?"

	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, taskID, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, projectID string, input domain.CreateTaskInput) (domain.Task, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	const query = `
INSERT INTO tasks (id, title, description, slug, difficulty, priority, status, project_id, assignee_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var assigneeID any
	if input.AssigneeID != nil {
		assigneeID = *input.AssigneeID
	}

	_, err := r.db.ExecContext(ctx, query,
		id,
		input.Title,
		input.Description,
		sluggen.Make(id, input.Title),
		input.Difficulty,
		string(input.Priority),
		string(domain.TaskStatusOpen),
		projectID,
		assigneeID,
		now,
		now,
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.Find(ctx, projectID, id)
}

// Update applies only the supplied fields. Status never changes through this
// path; the dedicated transition handles it.
func (r *TaskRepository) Update(ctx context.Context, projectID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if _, err := r.Find(ctx, projectID, taskID); err != nil {
		return domain.Task{}, err
	}

	assignments := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if input.Title != nil {
		assignments = append(assignments, "title = ?", "slug = ?")
		args = append(args, *input.Title, sluggen.Make(taskID, *input.Title))
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Difficulty != nil {
		assignments = append(assignments, "difficulty = ?")
		args = append(args, *input.Difficulty)
	}
	if input.Priority != nil {
		assignments = append(assignments, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.AssigneeID != nil {
		assignments = append(assignments, "assignee_id = ?")
		args = append(args, *input.AssigneeID)
	}

	args = append(args, taskID, projectID)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ? AND project_id = ?", joinAssignments(assignments))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.Find(ctx, projectID, taskID)
}

func (r *TaskRepository) List(ctx context.Context, projectID string, sortBy listing.Sort, page listing.Pagination) (listing.Page[domain.Task], error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM tasks WHERE project_id = ?", projectID)
	if err != nil {
		return listing.Page[domain.Task]{}, err
	}

	query := selectTaskQuery +
		"WHERE t.project_id = ?" +
		"\nORDER BY " + taskOrderClause(sortBy) +
		"\nLIMIT ? OFFSET ?"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, projectID, page.Limit(), page.Offset()); err != nil {
		return listing.Page[domain.Task]{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return listing.NewPage(tasks, page, total), nil
}

// TransitionStatus locks the task together with its owning project so a
// concurrent project close cannot race the frozen-status check.
func (r *TaskRepository) TransitionStatus(ctx context.Context, projectID, taskID string, target domain.TaskStatus) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var row struct {
		TaskStatus    string `db:"task_status"`
		ProjectStatus string `db:"project_status"`
	}
	err = tx.GetContext(ctx, &row, `
SELECT t.status AS task_status, p.status AS project_status
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE t.id = ? AND t.project_id = ?
FOR UPDATE`, taskID, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrTaskNotFound
		}
		return false, err
	}

	next, ok := lifecycle.TaskTransition(
		domain.ProjectStatus(row.ProjectStatus),
		domain.TaskStatus(row.TaskStatus),
		target,
	)
	if !ok {
		return false, nil
	}

	if string(next) != row.TaskStatus {
		_, err = tx.ExecContext(ctx,
			"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?",
			string(next), time.Now().UTC(), taskID,
		)
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func taskOrderClause(sortBy listing.Sort) string {
	switch sortBy {
	case listing.SortAlphaAsc:
		return "t.title ASC"
	case listing.SortAlphaDesc:
		return "t.title DESC"
	case listing.SortCreate:
		return "t.created_at DESC"
	case listing.SortUpdate:
		return "t.updated_at DESC"
	default:
		return "t.id ASC"
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Slug:        row.Slug,
		Difficulty:  row.Difficulty,
		Priority:    domain.TaskPriority(row.Priority),
		Status:      domain.TaskStatus(row.Status),
		ProjectID:   row.ProjectID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.AssigneeID.Valid {
		task.Assignee = &domain.User{
			ID:        row.AssigneeID.String,
			FirstName: row.AssigneeFirstName.String,
			LastName:  row.AssigneeLastName.String,
			Email:     row.AssigneeEmail.String,
		}
	}

	return task
}
