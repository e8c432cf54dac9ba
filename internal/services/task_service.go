package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	users  repository.UserRepository
	tasks  repository.TaskRepository
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	users repository.UserRepository,
	tasks repository.TaskRepository,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		users:  users,
		tasks:  tasks,
		now:    time.Now,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, caller models.AuthUser, params CreateTaskParams) (*models.Task, error) {
	assignee, err := s.users.GetUserByID(ctx, params.AssignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("assigned_to", params.AssignedTo).
				Msg("assignee not found")
			return nil, ErrAssigneeNotFound
		}

		s.logger.Error().
			Err(err).
			Str("assigned_to", params.AssignedTo).
			Msg("failed to select assignee")
		return nil, err
	}

	now := s.now()
	task := &models.Task{
		Title:       params.Title,
		Description: params.Description,
		AssignedTo:  assignee.ID,
		AssignedBy:  caller.ID,
		DueDate:     models.TruncateToDate(params.DueDate),
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tasks.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	task.AssignedToUser = assignee.Summary()
	task.AssignedByUser = models.UserSummary{
		ID:          caller.ID,
		Name:        caller.Name,
		PhoneNumber: caller.PhoneNumber,
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("assigned_to", task.AssignedTo).
		Str("assigned_by", task.AssignedBy).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, caller models.AuthUser, cursor string) (*TaskPage, error) {
	query := repository.ListTasksQuery{
		Limit: TaskPageSize,
	}
	if !caller.IsAdmin() {
		query.AssignedTo = caller.ID
	}

	if cursor != "" {
		after, err := s.resolveCursor(ctx, query.AssignedTo, cursor)
		if err != nil {
			return nil, err
		}
		query.After = after
	}

	tasks, err := s.tasks.ListTasks(ctx, query)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", caller.ID).
			Msg("failed to select tasks")
		return nil, err
	}

	page := &TaskPage{Tasks: tasks}
	if len(tasks) == TaskPageSize {
		page.NextCursor = tasks[len(tasks)-1].ID
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", caller.ID).
		Str("cursor", cursor).
		Msg("selected tasks")
	return page, nil
}

// resolveCursor looks the cursor task up again under the caller's scope,
// so a crafted cursor can't reveal where other users' tasks sit.
func (s *taskServiceImpl) resolveCursor(ctx context.Context, assignedTo, cursor string) (*models.TaskKey, error) {
	task, err := s.tasks.GetTaskByID(ctx, cursor)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("cursor", cursor).
				Msg("cursor task not found")
			return nil, ErrInvalidCursor
		}

		s.logger.Error().
			Err(err).
			Str("cursor", cursor).
			Msg("failed to select cursor task")
		return nil, err
	}

	if assignedTo != "" && task.AssignedTo != assignedTo {
		s.logger.Error().
			Str("cursor", cursor).
			Str("user_id", assignedTo).
			Msg("cursor task is outside the caller's scope")
		return nil, ErrInvalidCursor
	}

	key := task.Key()
	return &key, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, caller models.AuthUser, params UpdateTaskParams) (*models.Task, error) {
	// The stored assignee is deliberately not consulted here.
	if caller.ID != params.AssignedTo {
		s.logger.Error().
			Str("task_id", params.ID).
			Str("user_id", caller.ID).
			Str("assigned_to", params.AssignedTo).
			Msg("caller is not the task assignee")
		return nil, ErrNotTaskAssignee
	}

	if params.Status != nil && !models.IsValidStatus(*params.Status) {
		s.logger.Error().
			Str("status", *params.Status).
			Msg("invalid task status")
		return nil, ErrInvalidTaskStatus
	}

	update := repository.TaskUpdate{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
		UpdatedAt:   s.now(),
	}
	if params.DueDate != nil {
		dueDate := models.TruncateToDate(*params.DueDate)
		update.DueDate = &dueDate
	}

	task, err := s.tasks.UpdateTask(ctx, params.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", caller.ID).
		Str("status", task.Status).
		Msg("updated task")
	return task, nil
}
