package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/metrics"
	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/notify"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

type reminderServiceImpl struct {
	logger     zerolog.Logger
	users      repository.UserRepository
	tasks      repository.TaskRepository
	dispatcher notify.Dispatcher
	now        func() time.Time
}

func NewReminderService(
	logger zerolog.Logger,
	users repository.UserRepository,
	tasks repository.TaskRepository,
	dispatcher notify.Dispatcher,
) ReminderService {
	return &reminderServiceImpl{
		logger:     logger,
		users:      users,
		tasks:      tasks,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *reminderServiceImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	now := s.now()
	tasks, err := s.tasks.ListPendingTasksDueBetween(ctx, now, now.Add(models.DueSoonWindow))
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks due soon")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks due soon")

	result := &SweepResult{
		Sent:   make([]string, 0),
		Failed: make([]string, 0),
	}
	for _, task := range tasks {
		user, err := s.users.GetUserByID(ctx, task.AssignedTo)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn().
					Str("task_id", task.ID).
					Str("assigned_to", task.AssignedTo).
					Msg("assignee not found, skipping reminder")
				metrics.RemindersTotal.WithLabelValues(metrics.ReminderResultSkipped).Inc()
				continue
			}

			s.logger.Error().
				Err(err).
				Str("assigned_to", task.AssignedTo).
				Msg("failed to select assignee")
			return nil, err
		}

		ok := s.dispatcher.Send(ctx, user.PhoneNumber, notify.ReminderText(task.Title, task.DueDate))
		if !ok {
			s.logger.Warn().
				Str("task_id", task.ID).
				Str("user_id", user.ID).
				Msg("failed to send reminder")
			metrics.RemindersTotal.WithLabelValues(metrics.ReminderResultFailed).Inc()
			result.Failed = append(result.Failed, task.ID)
			continue
		}

		metrics.RemindersTotal.WithLabelValues(metrics.ReminderResultSent).Inc()
		result.Sent = append(result.Sent, task.ID)
	}
	metrics.ReminderSweepsTotal.Inc()

	s.logger.Info().
		Int("sent", len(result.Sent)).
		Int("failed", len(result.Failed)).
		Msg("swept reminders")
	return result, nil
}
