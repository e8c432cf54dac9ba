package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// TwilioDispatcher sends SMS through the Twilio messages API.
type TwilioDispatcher struct {
	logger     zerolog.Logger
	messages   messageCreator
	fromNumber string
}

func NewTwilioDispatcher(
	logger zerolog.Logger,
	accountSID string,
	authToken string,
	fromNumber string,
) *TwilioDispatcher {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioDispatcher{
		logger:     logger,
		messages:   client.Api,
		fromNumber: fromNumber,
	}
}

func (d *TwilioDispatcher) Send(_ context.Context, to, text string) bool {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(d.fromNumber)
	params.SetBody(text)

	msg, err := d.messages.CreateMessage(params)
	if err != nil {
		d.logger.Error().
			Err(err).
			Str("to", to).
			Msg("failed to send sms")
		return false
	}

	event := d.logger.Debug().Str("to", to)
	if msg != nil && msg.Sid != nil {
		event = event.Str("sid", *msg.Sid)
	}
	event.Msg("sent sms")
	return true
}
