package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/service"
	apperrors "github.com/jlin/peacepet-backend/internal/errors"
	"github.com/jlin/peacepet-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
	expirySecs  int
}

func NewAuthController(authService service.AuthService, expirySecs int) *AuthController {
	return &AuthController{
		authService: authService,
		expirySecs:  expirySecs,
	}
}

// ShowLogin answers the login page request. An already-authenticated admin
// is sent straight to the panel.
// GET /admin/login
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if _, err := ctrl.authService.ValidateSession(token); err == nil {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"next": c.Query("next"),
	})
}

// Login verifies the posted credentials, sets the session cookie and
// redirects to the originally requested URL.
// POST /admin/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := ctrl.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.AuthInvalidCredentials, "Invalid username or password.")
			return
		}
		log.Error("Login failed", err)
		apperrors.InternalError(c, "")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, ctrl.expirySecs, "/", "", false, true)

	// Only same-site rooted paths may be redirect targets; "//host" is a
	// protocol-relative URL and would leave the site.
	next := c.Query("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/admin"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout clears the session cookie and returns to the storefront.
// GET /admin/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
