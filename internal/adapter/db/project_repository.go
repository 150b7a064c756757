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

// Task counts are aggregated at read time: tasks_count covers open tasks,
// completed_tasks_count closed ones. Blocked tasks appear in neither.
const selectProjectQuery = `
SELECT
  p.id,
  p.title,
  p.description,
  p.slug,
  p.status,
  p.created_at,
  p.updated_at,
  COALESCE(SUM(t.status = 'open'), 0)   AS tasks_count,
  COALESCE(SUM(t.status = 'closed'), 0) AS completed_tasks_count
FROM projects p
LEFT JOIN tasks t ON t.project_id = p.id
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID                  string    `db:"id"`
	Title               string    `db:"title"`
	Description         string    `db:"description"`
	Slug                string    `db:"slug"`
	Status              string    `db:"status"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
	TasksCount          int       `db:"tasks_count"`
	CompletedTasksCount int       `db:"completed_tasks_count"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Find(ctx context.Context, projectID string) (domain.Project, error) {
	query := selectProjectQuery + "WHERE p.id = ?\nGROUP BY p.id"

	var row projectRow
	if err := r.db.GetContext(ctx, &row, query, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	const query = `
INSERT INTO projects (id, title, description, slug, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		id,
		input.Title,
		input.Description,
		sluggen.Make(id, input.Title),
		string(domain.ProjectStatusOpen),
		now,
		now,
	)
	if err != nil {
		return domain.Project{}, err
	}

	return r.Find(ctx, id)
}

func (r *ProjectRepository) Update(ctx context.Context, projectID string, input domain.UpdateProjectInput) (domain.Project, error) {
	// Re-read first so a missing project aborts before any mutation.
	if _, err := r.Find(ctx, projectID); err != nil {
		return domain.Project{}, err
	}

	assignments := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if input.Title != nil {
		assignments = append(assignments, "title = ?", "slug = ?")
		args = append(args, *input.Title, sluggen.Make(projectID, *input.Title))
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}

	args = append(args, projectID)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", joinAssignments(assignments))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Project{}, err
	}

	return r.Find(ctx, projectID)
}

func (r *ProjectRepository) List(ctx context.Context, filter listing.Filter, page listing.Pagination) (listing.Page[domain.Project], error) {
	where, whereArgs := projectScopeClause(filter.Scope())

	var total int
	countQuery := "SELECT COUNT(*) FROM projects p" + where
	if err := r.db.GetContext(ctx, &total, countQuery, whereArgs...); err != nil {
		return listing.Page[domain.Project]{}, err
	}

	query := selectProjectQuery + where +
		"\nGROUP BY p.id" +
		"\nORDER BY " + projectOrderClause(filter.SortBy) +
		"\nLIMIT ? OFFSET ?"
	args := append(whereArgs, page.Limit(), page.Offset())

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return listing.Page[domain.Project]{}, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	return listing.NewPage(projects, page, total), nil
}

// TransitionStatus wraps guard and write in one transaction. The project row
// is locked so a task status change cannot slip between the pending-task
// count and the status write.
func (r *ProjectRepository) TransitionStatus(ctx context.Context, projectID string, target domain.ProjectStatus) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.GetContext(ctx, &current, "SELECT status FROM projects WHERE id = ? FOR UPDATE", projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrProjectNotFound
		}
		return false, err
	}

	var pending int
	err = tx.GetContext(ctx, &pending,
		"SELECT COUNT(*) FROM tasks WHERE project_id = ? AND status IN (?, ?)",
		projectID, string(domain.TaskStatusOpen), string(domain.TaskStatusBlocked),
	)
	if err != nil {
		return false, err
	}

	next, ok := lifecycle.ProjectTransition(domain.ProjectStatus(current), target, pending)
	if !ok {
		return false, nil
	}

	if string(next) != current {
		_, err = tx.ExecContext(ctx,
			"UPDATE projects SET status = ?, updated_at = ? WHERE id = ?",
			string(next), time.Now().UTC(), projectID,
		)
		if err != nil {
			return false, err
		}
	}

	return true, tx.Commit()
}

func projectScopeClause(scope listing.StatusScope) (string, []any) {
	switch scope {
	case listing.ScopeClosed:
		return "\nWHERE p.status = ?", []any{string(domain.ProjectStatusClosed)}
	case listing.ScopeOpen:
		return "\nWHERE p.status = ?", []any{string(domain.ProjectStatusOpen)}
	default:
		return "", nil
	}
}

func projectOrderClause(sortBy listing.Sort) string {
	switch sortBy {
	case listing.SortAlphaAsc:
		return "p.title ASC"
	case listing.SortAlphaDesc:
		return "p.title DESC"
	case listing.SortCreate:
		return "p.created_at DESC"
	case listing.SortUpdate:
		return "p.updated_at DESC"
	default:
		return "p.id ASC"
	}
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	return domain.Project{
		ID:                  row.ID,
		Title:               row.Title,
		Description:         row.Description,
		Slug:                row.Slug,
		Status:              domain.ProjectStatus(row.Status),
		TasksCount:          row.TasksCount,
		CompletedTasksCount: row.CompletedTasksCount,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
