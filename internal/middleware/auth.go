package middleware

import (
	"net/http"
	"net/url"

	"ckd-followup-backend/internal/models"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

// UserLoader resolves a session's user ID to the current account row
type UserLoader interface {
	GetUserByID(id uint) (*models.User, error)
}

// SessionAuth validates the session cookie and loads the current user.
// Requests without a valid session for an active account are redirected to
// the login form, preserving the originally requested path.
func SessionAuth(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectToLogin := func() {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
		}

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			redirectToLogin()
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil || !user.IsActive {
			redirectToLogin()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by SessionAuth
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get("currentUser"); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// RequireAdmin gates page routes behind the admin role. Violations are sent
// back to the dashboard with a warning instead of an HTTP error.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.Role.IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard?warning="+url.QueryEscape("permission denied"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminJSON gates the settings mutation endpoints behind the admin
// role, answering violations with the endpoints' {success, message} body
func RequireAdminJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.Role.IsAdmin() {
			utils.ResultResponse(c, http.StatusForbidden, false, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
