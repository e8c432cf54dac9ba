package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-team-tasks/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTaskNotFound         = errors.New("task not found")
	ErrAssigneeNotFound     = errors.New("assignee not found")
	ErrNotTaskAssignee      = errors.New("caller is not the task assignee")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidCursor        = errors.New("invalid cursor")
)

const (
	// TokenTTL is the fixed validity window of an issued token.
	TokenTTL = 7 * 24 * time.Hour

	// TaskPageSize is the number of tasks returned per listing page.
	TaskPageSize = 5
)

type AuthService interface {
	// Login authenticates the user by phone number and password
	// and issues a token carrying the user's claims.
	//
	// It returns ErrUserNotFound if no user has the given phone
	// number or ErrUserPasswordMismatch if the password is wrong.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// IssueToken signs the claims of user, valid for TokenTTL.
	IssueToken(user models.AuthUser) (string, time.Time, error)

	// VerifyToken returns the claims of a valid token. Any failure,
	// including expiry, is reported as ErrInvalidToken.
	VerifyToken(token string) (*models.AuthUser, error)
}

type UserService interface {
	// CreateMember stores a new user with the member role.
	//
	// It returns ErrUserAlreadyExists if the phone number is taken.
	CreateMember(ctx context.Context, params CreateMemberParams) (*models.User, error)

	// ListMembers returns every user with the member role.
	ListMembers(ctx context.Context) ([]*models.User, error)

	// EnsureAdmin creates the admin account unless a user
	// with the same phone number already exists.
	EnsureAdmin(ctx context.Context, params CreateMemberParams) (*models.User, bool, error)
}

type TaskService interface {
	// CreateTask assigns a new pending task on behalf of caller.
	//
	// It returns ErrAssigneeNotFound if the assignee doesn't exist.
	CreateTask(ctx context.Context, caller models.AuthUser, params CreateTaskParams) (*models.Task, error)

	// ListTasks returns one page of the tasks visible to caller.
	// Members only see their own tasks, admins see everything.
	//
	// It returns ErrInvalidCursor if the cursor doesn't name a
	// task visible to caller.
	ListTasks(ctx context.Context, caller models.AuthUser, cursor string) (*TaskPage, error)

	// UpdateTask applies a partial update requested by the assignee.
	//
	// The caller is matched against params.AssignedTo as supplied with
	// the request, not against the stored assignee. It returns
	// ErrNotTaskAssignee on mismatch, ErrTaskNotFound if the task
	// doesn't exist or ErrInvalidTaskStatus for an unknown status.
	UpdateTask(ctx context.Context, caller models.AuthUser, params UpdateTaskParams) (*models.Task, error)
}

type ReminderService interface {
	// Sweep sends one reminder for every pending task due within
	// models.DueSoonWindow. Failed sends are tallied, not retried.
	Sweep(ctx context.Context) (*SweepResult, error)
}

type LoginParams struct {
	PhoneNumber string
	Password    string
}

type LoginResult struct {
	User           models.AuthUser
	Token          string
	TokenExpiresAt time.Time
}

type CreateMemberParams struct {
	Name        string
	PhoneNumber string
	Password    string
}

type CreateTaskParams struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time
}

type UpdateTaskParams struct {
	ID          string
	AssignedTo  string
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
}

type TaskPage struct {
	Tasks []*models.Task
	// NextCursor is empty when the page is not full.
	NextCursor string
}

type SweepResult struct {
	Sent   []string
	Failed []string
}
