// Package middleware provides the session guard for admin-only routes.
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionUserKey is the session variable holding the logged-in admin email.
const sessionUserKey = "admin_email"

// SetAuthenticated records the admin in the session.
func SetAuthenticated(c *gin.Context, email string) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, email)
	return session.Save()
}

// ClearAuthenticated removes the admin from the session.
func ClearAuthenticated(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}

// AuthenticatedEmail returns the logged-in admin email, or "" when the
// session carries none.
func AuthenticatedEmail(c *gin.Context) string {
	session := sessions.Default(c)
	email, _ := session.Get(sessionUserKey).(string)
	return email
}

// RequirePage guards HTML routes. Requests without a session are redirected
// to the login page and aborted before any protected content is rendered.
// The check runs on every request; nothing is cached across activations.
func RequirePage(c *gin.Context) {
	if AuthenticatedEmail(c) == "" {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAPI guards JSON routes. Requests without a session get 401.
func RequireAPI(c *gin.Context) {
	if AuthenticatedEmail(c) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "admin session required",
			},
		})
		return
	}
	c.Next()
}
