package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
)

const SessionContextKey = "session"

// SessionHeader carries the shopper's session id. There is no
// authentication; a session is just an anonymous in-memory scope.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the request's session from the header,
// creating a fresh one when the header is absent or names an unknown
// session (state resets with the process, so stale ids are expected).
// The resolved id is always echoed back on the response.
func SessionMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *repository.Session

		if raw := strings.TrimSpace(c.GetHeader(SessionHeader)); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
				c.Abort()
				return
			}
			if existing, err := repos.Session.GetByID(c.Request.Context(), id); err == nil {
				sess = existing
			}
		}

		if sess == nil {
			created, err := repos.Session.Create(c.Request.Context())
			if err != nil {
				logger.Error("Failed to create session", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				c.Abort()
				return
			}
			sess = created
		}

		c.Set(SessionContextKey, sess)
		c.Header(SessionHeader, sess.ID.String())
		c.Next()
	}
}

// GetSessionFromContext retrieves the session set by SessionMiddleware
func GetSessionFromContext(c *gin.Context) (*repository.Session, bool) {
	v, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*repository.Session)
	return sess, ok
}
