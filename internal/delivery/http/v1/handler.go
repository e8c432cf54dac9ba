package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/services"
	"github.com/adanyl0v/go-team-tasks/internal/translator"
)

type Handler interface {
	HandleLogin(c *gin.Context)

	HandleCreateMember(c *gin.Context)
	HandleListMembers(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleListTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)

	HandleSweepReminders(c *gin.Context)
	HandleHealth(c *gin.Context)

	HandleAuthMiddleware(c *gin.Context)
	HandleLanguageMiddleware(c *gin.Context)
	HandleRequestLogMiddleware(c *gin.Context)
	RequireRole(role string) gin.HandlerFunc
}

type handlerImpl struct {
	logger     zerolog.Logger
	translator *translator.Translator
	auth       services.AuthService
	users      services.UserService
	tasks      services.TaskService
	reminders  services.ReminderService
	// sweepToken guards the reminder sweep when not empty.
	sweepToken string
	now        func() time.Time
}

func New(
	logger zerolog.Logger,
	tr *translator.Translator,
	authService services.AuthService,
	userService services.UserService,
	taskService services.TaskService,
	reminderService services.ReminderService,
	sweepToken string,
) Handler {
	return &handlerImpl{
		logger:     logger,
		translator: tr,
		auth:       authService,
		users:      userService,
		tasks:      taskService,
		reminders:  reminderService,
		sweepToken: sweepToken,
		now:        time.Now,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router = router.Group("/api/v1", h.HandleLanguageMiddleware)

	authRouter := router.Group("/auth")
	authRouter.POST("/login", h.HandleLogin)

	usersRouter := router.Group("/users", h.HandleAuthMiddleware, h.RequireRole(models.RoleAdmin))
	usersRouter.POST("", h.HandleCreateMember)
	usersRouter.GET("", h.HandleListMembers)

	tasksRouter := router.Group("/tasks", h.HandleAuthMiddleware)
	tasksRouter.POST("", h.RequireRole(models.RoleAdmin), h.HandleCreateTask)
	tasksRouter.GET("", h.HandleListTasks)
	tasksRouter.PATCH("/:id", h.HandleUpdateTask)

	router.POST("/reminders/sweep", h.HandleSweepReminders)
}
