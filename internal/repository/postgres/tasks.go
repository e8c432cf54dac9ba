package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

var taskColumns = []string{
	"t.id",
	"t.title",
	"t.description",
	"t.assigned_to",
	"t.assigned_by",
	"t.due_date",
	"t.status",
	"t.created_at",
	"t.updated_at",
	"ua.name",
	"ua.phone_number",
	"ub.name",
	"ub.phone_number",
}

type TaskRepository struct {
	db      *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db:      db,
		builder: newBuilder(),
	}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	taskUUID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate task uuid: %w", err)
	}

	query, args, err := r.builder.
		Insert("tasks").
		Columns(
			"id",
			"title",
			"description",
			"assigned_to",
			"assigned_by",
			"due_date",
			"status",
			"created_at",
			"updated_at",
		).
		Values(
			taskUUID.String(),
			task.Title,
			task.Description,
			task.AssignedTo,
			task.AssignedBy,
			task.DueDate.UTC(),
			task.Status,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	task.ID = taskUUID.String()
	return nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	query, args, err := r.selectTasks().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	task, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, q repository.ListTasksQuery) ([]*models.Task, error) {
	query, args, err := r.listTasksQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return r.queryTasks(ctx, query, args)
}

func (r *TaskRepository) ListPendingTasksDueBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error) {
	query, args, err := r.pendingDueBetweenQuery(from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	return r.queryTasks(ctx, query, args)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id string, update repository.TaskUpdate) (*models.Task, error) {
	query, args, err := r.updateTaskQuery(id, update).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetTaskByID(ctx, id)
}

func (r *TaskRepository) selectTasks() squirrel.SelectBuilder {
	return r.builder.
		Select(taskColumns...).
		From("tasks t").
		Join("users ua ON ua.id = t.assigned_to").
		Join("users ub ON ub.id = t.assigned_by")
}

func (r *TaskRepository) listTasksQuery(q repository.ListTasksQuery) squirrel.SelectBuilder {
	sb := r.selectTasks()
	if q.AssignedTo != "" {
		sb = sb.Where(squirrel.Eq{"t.assigned_to": q.AssignedTo})
	}
	if q.After != nil {
		dueDate := q.After.DueDate.UTC()
		sb = sb.Where(squirrel.Or{
			squirrel.Lt{"t.status": q.After.Status},
			squirrel.And{
				squirrel.Eq{"t.status": q.After.Status},
				squirrel.Gt{"t.due_date": dueDate},
			},
			squirrel.And{
				squirrel.Eq{"t.status": q.After.Status},
				squirrel.Eq{"t.due_date": dueDate},
				squirrel.Gt{"t.id": q.After.ID},
			},
		})
	}
	sb = sb.OrderBy("t.status DESC", "t.due_date ASC", "t.id ASC")
	if q.Limit > 0 {
		sb = sb.Limit(q.Limit)
	}
	return sb
}

// pendingDueBetweenQuery compares the DATE column with the calendar dates
// of from and to. Due dates are midnights, so due > from and due <= to hold
// exactly when they hold for the truncated bounds.
func (r *TaskRepository) pendingDueBetweenQuery(from, to time.Time) squirrel.SelectBuilder {
	return r.selectTasks().
		Where(squirrel.Eq{"t.status": models.StatusPending}).
		Where(squirrel.Gt{"t.due_date": models.TruncateToDate(from)}).
		Where(squirrel.LtOrEq{"t.due_date": models.TruncateToDate(to)}).
		OrderBy("t.due_date ASC", "t.id ASC")
}

func (r *TaskRepository) updateTaskQuery(id string, update repository.TaskUpdate) squirrel.UpdateBuilder {
	ub := r.builder.
		Update("tasks").
		Set("updated_at", update.UpdatedAt)
	if update.Title != nil {
		ub = ub.Set("title", *update.Title)
	}
	if update.Description != nil {
		ub = ub.Set("description", *update.Description)
	}
	if update.DueDate != nil {
		ub = ub.Set("due_date", update.DueDate.UTC())
	}
	if update.Status != nil {
		ub = ub.Set("status", *update.Status)
	}
	return ub.Where(squirrel.Eq{"id": id})
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args []any) ([]*models.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.AssignedTo,
		&task.AssignedBy,
		&task.DueDate,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.AssignedToUser.Name,
		&task.AssignedToUser.PhoneNumber,
		&task.AssignedByUser.Name,
		&task.AssignedByUser.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	task.AssignedToUser.ID = task.AssignedTo
	task.AssignedByUser.ID = task.AssignedBy
	return &task, nil
}
