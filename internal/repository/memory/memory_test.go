package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

func TestStore_CreateUserRejectsDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := &models.User{PhoneNumber: "0901234567", Name: "An", Role: models.RoleMember}
	require.NoError(t, s.CreateUser(ctx, first))
	require.NotEmpty(t, first.ID)

	err := s.CreateUser(ctx, &models.User{PhoneNumber: "0901234567", Name: "Binh", Role: models.RoleMember})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)

	got, err := s.GetUserByPhoneNumber(ctx, "0901234567")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	_, err = s.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_ListTasksOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	s := New()
	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	admin := &models.User{PhoneNumber: "1", Name: "Admin", Role: models.RoleAdmin}
	an := &models.User{PhoneNumber: "2", Name: "An", Role: models.RoleMember}
	binh := &models.User{PhoneNumber: "3", Name: "Binh", Role: models.RoleMember}
	for _, u := range []*models.User{admin, an, binh} {
		require.NoError(t, s.CreateUser(ctx, u))
	}

	create := func(title, assignee, status string, due time.Time) *models.Task {
		task := &models.Task{Title: title, AssignedTo: assignee, AssignedBy: admin.ID, Status: status, DueDate: due}
		require.NoError(t, s.CreateTask(ctx, task))
		return task
	}
	create("done", an.ID, models.StatusCompleted, day(1))
	create("later", an.ID, models.StatusPending, day(9))
	create("sooner", an.ID, models.StatusPending, day(3))
	create("other", binh.ID, models.StatusPending, day(2))

	tasks, err := s.ListTasks(ctx, repository.ListTasksQuery{AssignedTo: an.ID})
	require.NoError(t, err)

	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
		require.Equal(t, "An", task.AssignedToUser.Name)
		require.Equal(t, "Admin", task.AssignedByUser.Name)
	}
	require.Equal(t, []string{"sooner", "later", "done"}, titles)

	after := tasks[0].Key()
	tasks, err = s.ListTasks(ctx, repository.ListTasksQuery{AssignedTo: an.ID, After: &after, Limit: 1})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "later", tasks[0].Title)
}

func TestStore_ListPendingTasksDueBetweenBounds(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for i, due := range []time.Time{
		now,                           // excluded: not after from
		now.AddDate(0, 0, 1),          // included
		now.Add(models.DueSoonWindow), // included: upper bound is inclusive
		now.AddDate(0, 0, 4),          // excluded
	} {
		task := &models.Task{Title: string(rune('a' + i)), Status: models.StatusPending, DueDate: due}
		require.NoError(t, s.CreateTask(ctx, task))
	}
	require.NoError(t, s.CreateTask(ctx, &models.Task{
		Title: "completed", Status: models.StatusCompleted, DueDate: now.AddDate(0, 0, 1),
	}))

	tasks, err := s.ListPendingTasksDueBetween(ctx, now, now.Add(models.DueSoonWindow))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "b", tasks[0].Title)
	require.Equal(t, "c", tasks[1].Title)
}

func TestStore_UpdateTask(t *testing.T) {
	ctx := context.Background()
	s := New()

	task := &models.Task{Title: "old", Description: "d", Status: models.StatusPending}
	require.NoError(t, s.CreateTask(ctx, task))

	title := "new"
	updated, err := s.UpdateTask(ctx, task.ID, repository.TaskUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Title)
	require.Equal(t, "d", updated.Description)

	_, err = s.UpdateTask(ctx, "missing", repository.TaskUpdate{Title: &title})
	require.ErrorIs(t, err, repository.ErrNotFound)
}
