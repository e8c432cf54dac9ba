package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/services"
)

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,max=32"`
	Password    string `json:"password" binding:"required,max=255"`
}

type userResponse struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

func newUserResponse(user models.AuthUser) userResponse {
	return userResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		Role:        user.Role,
	}
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError(bindErrorMessageID(err, msgMissingCredentials)))
		return
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		h.logger.Error().Msg("missing credentials")
		h.abort(c, newBadRequestError(msgMissingCredentials))
		return
	}

	result, err := h.auth.Login(c, services.LoginParams{
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrUserPasswordMismatch):
			h.abort(c, newUnauthorizedError(msgInvalidCredentials))
		default:
			h.abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    newUserResponse(result.User),
		Token:   result.Token,
	})
}
