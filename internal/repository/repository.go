package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-team-tasks/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type UserRepository interface {
	// CreateUser assigns an id to the user and stores it.
	// It returns ErrAlreadyExists if the phone number is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID returns ErrNotFound if there is no such user.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByPhoneNumber returns ErrNotFound if there is no such user.
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (*models.User, error)

	// ListUsersByRole returns users with the given role ordered by name.
	ListUsersByRole(ctx context.Context, role string) ([]*models.User, error)
}

type TaskRepository interface {
	// CreateTask assigns an id to the task and stores it.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTaskByID returns ErrNotFound if there is no such task.
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)

	// ListTasks returns at most query.Limit tasks in models.TaskKey order.
	ListTasks(ctx context.Context, query ListTasksQuery) ([]*models.Task, error)

	// ListPendingTasksDueBetween returns pending tasks with from < due date <= to.
	ListPendingTasksDueBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error)

	// UpdateTask applies the non-nil fields and returns ErrNotFound if there is no such task.
	UpdateTask(ctx context.Context, id string, update TaskUpdate) (*models.Task, error)
}

type ListTasksQuery struct {
	// AssignedTo restricts the result to one assignee when not empty.
	AssignedTo string
	// After skips every task up to and including this position.
	After *models.TaskKey
	Limit uint64
}

type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
	UpdatedAt   time.Time
}
