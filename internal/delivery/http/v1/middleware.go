package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-team-tasks/internal/metrics"
	"github.com/adanyl0v/go-team-tasks/internal/models"
)

const (
	authUserCtxKey = "auth_user"
	languageCtxKey = "language"
)

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix || parts[1] == "" {
		h.logger.Error().Msg("invalid authorization header")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	user, err := h.auth.VerifyToken(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to verify token")
		h.abort(c, newUnauthorizedError(msgAccessDenied))
		return
	}

	c.Set(authUserCtxKey, *user)
	c.Next()
}

func (h *handlerImpl) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := getAuthUser(c)
		if !ok {
			h.logger.Error().Msg("no auth user found in context")
			h.abort(c, newUnauthorizedError(msgAccessDenied))
			return
		}

		if user.Role != role {
			h.logger.Error().
				Str("user_id", user.ID).
				Str("role", user.Role).
				Str("required_role", role).
				Msg("insufficient role")
			h.abort(c, newForbiddenError(msgAdminRequired))
			return
		}
		c.Next()
	}
}

// HandleLanguageMiddleware picks the response language from the lang
// query parameter, falling back to the Accept-Language header.
func (h *handlerImpl) HandleLanguageMiddleware(c *gin.Context) {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	c.Set(languageCtxKey, lang)
	c.Next()
}

func (h *handlerImpl) HandleRequestLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	latency := time.Since(start)

	status := c.Writer.Status()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	metrics.HTTPRequestDuration.
		WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
		Observe(latency.Seconds())

	event := h.logger.Info()
	if status >= http.StatusInternalServerError {
		event = h.logger.Error()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", latency).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

func getAuthUser(c *gin.Context) (models.AuthUser, bool) {
	value, exists := c.Get(authUserCtxKey)
	if !exists {
		return models.AuthUser{}, false
	}
	user, ok := value.(models.AuthUser)
	return user, ok
}
