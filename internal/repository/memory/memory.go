// Package memory keeps users and tasks in process memory. It backs the
// local storage driver and the service tests; data is lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]models.User
	tasks map[string]models.Task
}

func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		tasks: make(map[string]models.Task),
	}
}

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.PhoneNumber == user.PhoneNumber {
			return repository.ErrAlreadyExists
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	user.ID = id.String()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByPhoneNumber(_ context.Context, phoneNumber string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.PhoneNumber == phoneNumber {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) ListUsersByRole(_ context.Context, role string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, &u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (s *Store) CreateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	task.ID = id.String()
	s.tasks[task.ID] = *task
	return nil
}

func (s *Store) GetTaskByID(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.withUsers(t), nil
}

func (s *Store) ListTasks(_ context.Context, query repository.ListTasksQuery) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0)
	for _, t := range s.tasks {
		if query.AssignedTo != "" && t.AssignedTo != query.AssignedTo {
			continue
		}
		if query.After != nil && !query.After.Less(t.Key()) {
			continue
		}
		tasks = append(tasks, s.withUsers(t))
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Key().Less(tasks[j].Key())
	})

	if query.Limit > 0 && uint64(len(tasks)) > query.Limit {
		tasks = tasks[:query.Limit]
	}
	return tasks, nil
}

func (s *Store) ListPendingTasksDueBetween(_ context.Context, from, to time.Time) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*models.Task, 0)
	for _, t := range s.tasks {
		if t.Status != models.StatusPending {
			continue
		}
		if !t.DueDate.After(from) || t.DueDate.After(to) {
			continue
		}
		tasks = append(tasks, s.withUsers(t))
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Key().Less(tasks[j].Key())
	})
	return tasks, nil
}

func (s *Store) UpdateTask(_ context.Context, id string, update repository.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.DueDate != nil {
		t.DueDate = *update.DueDate
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	t.UpdatedAt = update.UpdatedAt

	s.tasks[id] = t
	return s.withUsers(t), nil
}

// withUsers must be called with s.mu held.
func (s *Store) withUsers(t models.Task) *models.Task {
	if u, ok := s.users[t.AssignedTo]; ok {
		t.AssignedToUser = u.Summary()
	}
	if u, ok := s.users[t.AssignedBy]; ok {
		t.AssignedByUser = u.Summary()
	}
	return &t
}
