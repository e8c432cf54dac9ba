package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingCredentials  = "missingCredentials"
	msgInvalidCredentials  = "invalidCredentials"
	msgSystemError         = "systemError"
	msgAccessDenied        = "accessDenied"
	msgAdminRequired       = "adminRequired"
	msgInvalidRequestBody  = "invalidRequestBody"
	msgMissingMemberFields = "missingMemberFields"
	msgPhoneNumberTaken    = "phoneNumberTaken"
	msgMemberCreated       = "memberCreated"
	msgMissingTaskFields   = "missingTaskFields"
	msgAssigneeNotFound    = "assigneeNotFound"
	msgInvalidDueDate      = "invalidDueDate"
	msgInvalidStatus       = "invalidStatus"
	msgInvalidCursor       = "invalidCursor"
	msgTaskCreated         = "taskCreated"
	msgTaskUpdated         = "taskUpdated"
	msgRemindersSent       = "remindersSent"
)

// envelope is the body of every response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

type apiError struct {
	Code      int
	MessageID string
}

func newAPIError(code int, messageID string) apiError {
	return apiError{
		Code:      code,
		MessageID: messageID,
	}
}

func (e apiError) Error() string {
	return e.MessageID
}

func (h *handlerImpl) abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, envelope{
		Success: false,
		Message: h.localize(c, err.MessageID, nil),
	})
}

func (h *handlerImpl) localize(c *gin.Context, messageID string, data map[string]any) string {
	return h.translator.Localize(c.GetString(languageCtxKey), messageID, data)
}

func newInternalError() apiError {
	return newAPIError(http.StatusInternalServerError, msgSystemError)
}

func newBadRequestError(messageID string) apiError {
	return newAPIError(http.StatusBadRequest, messageID)
}

func newUnauthorizedError(messageID string) apiError {
	return newAPIError(http.StatusUnauthorized, messageID)
}

func newForbiddenError(messageID string) apiError {
	return newAPIError(http.StatusForbidden, messageID)
}

// bindErrorMessageID maps a ShouldBindJSON failure to a message id.
// Field rule violations get validationMessageID, except a bad task
// status which has its own message. Malformed JSON is invalidRequestBody.
func bindErrorMessageID(err error, validationMessageID string) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return msgInvalidRequestBody
	}
	for _, fieldErr := range validationErrs {
		if fieldErr.StructField() == "Status" && fieldErr.Tag() == "oneof" {
			return msgInvalidStatus
		}
	}
	return validationMessageID
}
