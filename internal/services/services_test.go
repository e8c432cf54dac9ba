package services

import (
	"context"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository/memory"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

var testHashParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedUser(t *testing.T, store *memory.Store, name, phoneNumber, password, role string) *models.User {
	t.Helper()

	hash, err := argon2id.CreateHash(password, testHashParams)
	require.NoError(t, err)

	user := &models.User{
		Name:        name,
		PhoneNumber: phoneNumber,
		Password:    hash,
		Role:        role,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func seedTask(t *testing.T, store *memory.Store, title, assignedTo, assignedBy, status string, dueDate time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:       title,
		Description: title + " description",
		AssignedTo:  assignedTo,
		AssignedBy:  assignedBy,
		DueDate:     dueDate,
		Status:      status,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	require.NoError(t, store.CreateTask(context.Background(), task))
	return task
}

func newTestAuthService(store *memory.Store, now time.Time) *authServiceImpl {
	s := NewAuthService(zerolog.Nop(), store, "team-tasks-test", []byte("test-signing-key")).(*authServiceImpl)
	s.now = fixedClock(now)
	return s
}

func newTestUserService(store *memory.Store) *userServiceImpl {
	s := NewUserService(zerolog.Nop(), store).(*userServiceImpl)
	s.hashParams = testHashParams
	s.now = fixedClock(testNow)
	return s
}

func newTestTaskService(store *memory.Store) *taskServiceImpl {
	s := NewTaskService(zerolog.Nop(), store, store).(*taskServiceImpl)
	s.now = fixedClock(testNow)
	return s
}
