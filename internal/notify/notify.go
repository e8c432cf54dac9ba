package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Dispatcher delivers a text message to a phone number.
type Dispatcher interface {
	// Send reports whether the message was handed over for delivery.
	// Failures are logged by the implementation and never retried.
	Send(ctx context.Context, to, text string) bool
}

// ReminderText renders the reminder sent for a task approaching its due date.
func ReminderText(title string, dueDate time.Time) string {
	return fmt.Sprintf("Nhắc nhở: \"%s\" đến hạn vào %s. Vui lòng hoàn thành trước thời gian.",
		title, dueDate.Format("02/01/2006"))
}

// LogDispatcher only logs the messages it is asked to send.
type LogDispatcher struct {
	logger zerolog.Logger
}

func NewLogDispatcher(logger zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(_ context.Context, to, text string) bool {
	d.logger.Info().
		Str("to", to).
		Str("text", text).
		Msg("sms not sent, log dispatcher in use")
	return true
}
