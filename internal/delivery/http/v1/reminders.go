package v1

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sweepTokenHeader = "X-Sweep-Token"

type sweepDetailsResponse struct {
	Sent   []string `json:"sent"`
	Failed []string `json:"failed"`
}

type sweepResponse struct {
	RemindersSent   int                  `json:"remindersSent"`
	FailedReminders int                  `json:"failedReminders"`
	Details         sweepDetailsResponse `json:"details"`
}

func (h *handlerImpl) HandleSweepReminders(c *gin.Context) {
	if h.sweepToken != "" {
		token := c.GetHeader(sweepTokenHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.sweepToken)) != 1 {
			h.logger.Error().Msg("invalid sweep token")
			h.abort(c, newUnauthorizedError(msgAccessDenied))
			return
		}
	}

	result, err := h.reminders.Sweep(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to sweep reminders")
		h.abort(c, newInternalError())
		return
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data: sweepResponse{
			RemindersSent:   len(result.Sent),
			FailedReminders: len(result.Failed),
			Details: sweepDetailsResponse{
				Sent:   result.Sent,
				Failed: result.Failed,
			},
		},
		Message: h.localize(c, msgRemindersSent, map[string]any{
			"Sent":   len(result.Sent),
			"Failed": len(result.Failed),
		}),
	})
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, envelope{Success: true})
}
