package models

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type TaskState string

const (
	TaskStatePending   TaskState = "pending"
	TaskStateCompleted TaskState = "completed"
	TaskStateDueSoon   TaskState = "dueSoon"
	TaskStateOverdue   TaskState = "overdue"
)

// DueSoonWindow is how far ahead of now a pending task starts being flagged.
const DueSoonWindow = 3 * 24 * time.Hour

// DateLayout is the calendar-date format used for due dates on the wire.
const DateLayout = time.DateOnly

type Task struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string
	AssignedBy  string
	// DueDate is the start of the due calendar day in UTC.
	DueDate   time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	AssignedToUser UserSummary
	AssignedByUser UserSummary
}

func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusCompleted
}

// State classifies the task at the given instant.
//
// A completed task is always completed. Otherwise a due date strictly
// before now is overdue, and one strictly inside (now, now+DueSoonWindow)
// is due soon. Everything else, including a due date equal to now or to
// now+DueSoonWindow, stays pending.
func (t *Task) State(now time.Time) TaskState {
	if t.Status == StatusCompleted {
		return TaskStateCompleted
	}
	if t.DueDate.Before(now) {
		return TaskStateOverdue
	}
	if t.DueDate.After(now) && t.DueDate.Before(now.Add(DueSoonWindow)) {
		return TaskStateDueSoon
	}
	return TaskStatePending
}

// TaskKey is the position of a task in the listing order:
// status descending, due date ascending, id ascending.
type TaskKey struct {
	Status  string
	DueDate time.Time
	ID      string
}

func (t *Task) Key() TaskKey {
	return TaskKey{
		Status:  t.Status,
		DueDate: t.DueDate,
		ID:      t.ID,
	}
}

// Less reports whether k is listed before other.
func (k TaskKey) Less(other TaskKey) bool {
	if k.Status != other.Status {
		return k.Status > other.Status
	}
	if !k.DueDate.Equal(other.DueDate) {
		return k.DueDate.Before(other.DueDate)
	}
	return k.ID < other.ID
}

// TruncateToDate drops the time of day, keeping the calendar date t has in its own location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
