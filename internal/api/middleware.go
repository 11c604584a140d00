package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tatiadventure/household-server/internal/models"
	"github.com/tatiadventure/household-server/internal/service"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "session"

const sessionContextKey = "session"

// SessionMiddleware returns a Gin middleware that requires a valid session
// cookie. Requests without one are redirected to the login view before any
// handler can touch data.
func SessionMiddleware(svc service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			redirectHome(c)
			return
		}

		sess, err := svc.ParseSessionToken(token)
		if err != nil {
			redirectHome(c)
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

// currentSession returns the session placed in the context by
// SessionMiddleware, or nil outside the authenticated group.
func currentSession(c *gin.Context) *models.SessionUser {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*models.SessionUser); ok {
			return sess
		}
	}
	return nil
}

// RequestLogger logs each request through slog, tagged with a request id
// that is also echoed back in the X-Request-ID header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		slog.Info("request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
