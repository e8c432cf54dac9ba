package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessages struct {
	err    error
	params []*twilioapi.CreateMessageParams
}

func (f *fakeMessages) CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioapi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioDispatcher_Send(t *testing.T) {
	messages := &fakeMessages{}
	d := &TwilioDispatcher{logger: zerolog.Nop(), messages: messages, fromNumber: "+15550001"}

	ok := d.Send(context.Background(), "0901234567", "hello")
	require.True(t, ok)
	require.Len(t, messages.params, 1)
	require.Equal(t, "0901234567", *messages.params[0].To)
	require.Equal(t, "+15550001", *messages.params[0].From)
	require.Equal(t, "hello", *messages.params[0].Body)
}

func TestTwilioDispatcher_SendFailure(t *testing.T) {
	d := &TwilioDispatcher{
		logger:     zerolog.Nop(),
		messages:   &fakeMessages{err: errors.New("unreachable")},
		fromNumber: "+15550001",
	}
	require.False(t, d.Send(context.Background(), "0901234567", "hello"))
}

func TestReminderText(t *testing.T) {
	due := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	require.Equal(t,
		`Nhắc nhở: "Báo cáo" đến hạn vào 12/03/2026. Vui lòng hoàn thành trước thời gian.`,
		ReminderText("Báo cáo", due))
}

func TestLogDispatcher_AlwaysSucceeds(t *testing.T) {
	d := NewLogDispatcher(zerolog.Nop())
	require.True(t, d.Send(context.Background(), "0901234567", "hello"))
}
