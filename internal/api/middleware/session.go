package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	sessionName  = "acai_session"
	sessionIDKey = "sid"
	contextIDKey = "session_id"
)

// Session assigns every client a cookie-backed session id. The id keys the
// in-memory cart; nothing else is stored in the cookie.
func Session(store sessions.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// An undecodable cookie still yields a fresh session here.
		sess, err := store.Get(c.Request, sessionName)
		if err != nil {
			logger.Debug("Session cookie rejected, issuing a new one", zap.Error(err))
		}

		id, ok := sess.Values[sessionIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values[sessionIDKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				logger.Warn("Failed to save session cookie", zap.Error(err))
			}
		}

		c.Set(contextIDKey, id)
		c.Next()
	}
}

// GetSessionID returns the session id set by the Session middleware.
func GetSessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
