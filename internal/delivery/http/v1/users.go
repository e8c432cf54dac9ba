package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-team-tasks/internal/services"
)

type createMemberRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required,numeric,min=9,max=15"`
	Password    string `json:"password" binding:"required,min=6,max=255"`
}

func (h *handlerImpl) HandleCreateMember(c *gin.Context) {
	var req createMemberRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError(bindErrorMessageID(err, msgMissingMemberFields)))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.logger.Error().Msg("missing member fields")
		h.abort(c, newBadRequestError(msgMissingMemberFields))
		return
	}

	user, err := h.users.CreateMember(c, services.CreateMemberParams{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create member")
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			h.abort(c, newBadRequestError(msgPhoneNumberTaken))
		default:
			h.abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusCreated, envelope{
		Success: true,
		Data:    newUserResponse(user.AuthUser()),
		Message: h.localize(c, msgMemberCreated, nil),
	})
}

func (h *handlerImpl) HandleListMembers(c *gin.Context) {
	members, err := h.users.ListMembers(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list members")
		h.abort(c, newInternalError())
		return
	}

	response := make([]userResponse, len(members))
	for i, member := range members {
		response[i] = newUserResponse(member.AuthUser())
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    response,
	})
}
