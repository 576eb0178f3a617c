package handler

import (
	"net/http"

	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// sessionActive reports whether the request carries a valid session cookie
func sessionActive(c *gin.Context) bool {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		return false
	}
	_, err = utils.ValidateSessionToken(token)
	return err == nil
}

// Index redirects to the dashboard when logged in, to the login form
// otherwise
func (h *AuthHandler) Index(c *gin.Context) {
	if sessionActive(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginForm answers the login page route
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if sessionActive(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	utils.MessageResponse(c, "login required")
}

// Login authenticates a username/password form submission and establishes
// the session cookie, honoring the ?next= redirect target
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	result, err := h.authService.Login(username, password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		result.Token,
		int(utils.GetSessionExpiry().Seconds()),
		"/",
		"",    // domain (empty means current domain)
		false, // secure (set to true in production with HTTPS)
		true,  // httpOnly
	)

	next := c.Query("next")
	if next == "" {
		next = "/dashboard"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout clears the session cookie unconditionally
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
