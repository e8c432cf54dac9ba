package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/services"
)

type userSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

func newUserSummaryResponse(summary models.UserSummary) userSummaryResponse {
	return userSummaryResponse{
		ID:          summary.ID,
		Name:        summary.Name,
		PhoneNumber: summary.PhoneNumber,
	}
}

type taskResponse struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	AssignedTo     string              `json:"assignedTo"`
	AssignedToUser userSummaryResponse `json:"assignedToUser"`
	AssignedBy     string              `json:"assignedBy"`
	AssignedByUser userSummaryResponse `json:"assignedByUser"`
	DueDate        string              `json:"dueDate"`
	Status         string              `json:"status"`
	State          models.TaskState    `json:"state"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

func newTaskResponse(task *models.Task, now time.Time) taskResponse {
	return taskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		AssignedTo:     task.AssignedTo,
		AssignedToUser: newUserSummaryResponse(task.AssignedToUser),
		AssignedBy:     task.AssignedBy,
		AssignedByUser: newUserSummaryResponse(task.AssignedByUser),
		DueDate:        task.DueDate.Format(models.DateLayout),
		Status:         task.Status,
		State:          task.State(now),
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

type taskPageResponse struct {
	Tasks      []taskResponse `json:"tasks"`
	NextCursor string         `json:"nextCursor,omitempty"`
}

// parseDueDate accepts a calendar date or an RFC 3339 timestamp.
func parseDueDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=2000"`
	AssignedTo  string `json:"assignedTo" binding:"required,max=255"`
	DueDate     string `json:"dueDate" binding:"required,max=64"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		h.logger.Error().Msg("no auth user found in context")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError(bindErrorMessageID(err, msgMissingTaskFields)))
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		h.logger.Error().Msg("missing task fields")
		h.abort(c, newBadRequestError(msgMissingTaskFields))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("due_date", req.DueDate).
			Msg("failed to parse due date")
		h.abort(c, newBadRequestError(msgInvalidDueDate))
		return
	}

	task, err := h.tasks.CreateTask(c, user, services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		switch {
		case errors.Is(err, services.ErrAssigneeNotFound):
			h.abort(c, newBadRequestError(msgAssigneeNotFound))
		default:
			h.abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusCreated, envelope{
		Success: true,
		Data:    newTaskResponse(task, h.now()),
		Message: h.localize(c, msgTaskCreated, nil),
	})
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		h.logger.Error().Msg("no auth user found in context")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	page, err := h.tasks.ListTasks(c, user, c.Query("cursor"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		switch {
		case errors.Is(err, services.ErrInvalidCursor):
			h.abort(c, newBadRequestError(msgInvalidCursor))
		default:
			h.abort(c, newInternalError())
		}
		return
	}

	now := h.now()
	response := taskPageResponse{
		Tasks:      make([]taskResponse, len(page.Tasks)),
		NextCursor: page.NextCursor,
	}
	for i, task := range page.Tasks {
		response.Tasks[i] = newTaskResponse(task, now)
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    response,
	})
}

type updateTaskRequest struct {
	AssignedTo  string  `json:"assignedTo" binding:"max=255"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed"`
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	DueDate     *string `json:"dueDate,omitempty" binding:"omitempty,max=64"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		h.logger.Error().Msg("no auth user found in context")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError(bindErrorMessageID(err, msgInvalidRequestBody)))
		return
	}

	if (req.Title != nil && strings.TrimSpace(*req.Title) == "") ||
		(req.Description != nil && strings.TrimSpace(*req.Description) == "") {
		h.logger.Error().Msg("blank task fields")
		h.abort(c, newBadRequestError(msgMissingTaskFields))
		return
	}

	params := services.UpdateTaskParams{
		ID:          c.Param("id"),
		AssignedTo:  req.AssignedTo,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			h.logger.Error().
				Err(err).
				Str("due_date", *req.DueDate).
				Msg("failed to parse due date")
			h.abort(c, newBadRequestError(msgInvalidDueDate))
			return
		}
		params.DueDate = &dueDate
	}

	task, err := h.tasks.UpdateTask(c, user, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrNotTaskAssignee),
			errors.Is(err, services.ErrTaskNotFound):
			h.abort(c, newForbiddenError(msgAccessDenied))
		case errors.Is(err, services.ErrInvalidTaskStatus):
			h.abort(c, newBadRequestError(msgInvalidStatus))
		default:
			h.abort(c, newInternalError())
		}
		return
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    newTaskResponse(task, h.now()),
		Message: h.localize(c, msgTaskUpdated, nil),
	})
}
