package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/models"
)

const ContextUserID = "current_user_id"

func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.Authenticated() {
			if session != nil {
				session.AddFlash(models.FlashWarning, "Please log in to continue.")
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.Authenticated() || !session.IsAdmin() {
			if session != nil {
				session.AddFlash(models.FlashError, "Administrator access required.")
			}
			c.Redirect(http.StatusFound, "/login?admin=1")
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Next()
	}
}
