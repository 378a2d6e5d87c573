package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/jlin/peacepet-backend/internal/app/service"
)

// SessionCookieName carries the signed admin session token.
const SessionCookieName = "admin_session"

// IsAdminKey marks an authenticated admin request in the gin context.
const IsAdminKey = "is_admin"

// LoginPath is where unauthenticated admin requests get redirected.
const LoginPath = "/admin/login"

type AdminMiddleware struct {
	authService service.AuthService
}

func NewAdminMiddleware(authService service.AuthService) *AdminMiddleware {
	return &AdminMiddleware{authService: authService}
}

// RequireAdmin guards admin routes. Requests without a valid session are
// redirected to the login page with the originally requested URL preserved
// in the next parameter; no handler runs.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			log.Warn("Admin access without session", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			m.redirectToLogin(c)
			return
		}

		claims, err := m.authService.ValidateSession(token)
		if err != nil {
			log.Warn("Admin session rejected", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			m.redirectToLogin(c)
			return
		}

		c.Set(IsAdminKey, claims.Admin)
		c.Next()
	}
}

func (m *AdminMiddleware) redirectToLogin(c *gin.Context) {
	target := LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(c *gin.Context) bool {
	if v, exists := c.Get(IsAdminKey); exists {
		if admin, ok := v.(bool); ok {
			return admin
		}
	}
	return false
}
