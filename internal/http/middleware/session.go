package middleware

import (
	"tarefas_webapp/internal/logger"
	"tarefas_webapp/internal/session"

	"github.com/gin-gonic/gin"
)

// Session resolves the session cookie against the store and puts the
// identity on the gin context. Requests without a valid session pass
// through untouched; each handler decides whether that matters.
func Session(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		ident, ok, err := store.Get(c.Request.Context(), id)
		if err != nil {
			logger.Warn("session lookup failed", "error", err)
			c.Next()
			return
		}
		if ok {
			c.Set("session_id", id)
			c.Set("identity", ident)
		}
		c.Next()
	}
}
