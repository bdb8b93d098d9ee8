package middleware

import (
	"net/http" // HTTP status codes

	"feedback_system/internal/flash"   // Flash messages
	"feedback_system/internal/session" // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
)

// identityKey is the gin context key holding the authenticated username
const identityKey = "identity"

// SessionAuth resolves the session cookie once per request and stores the
// authenticated identity in the request context. Unauthenticated requests pass
// through with no identity set; route guards decide what that means.
func SessionAuth(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Read the session cookie, if present
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			// Resolve the cookie to an identity; failures mean unauthenticated
			if username, err := mgr.Identity(c.Request.Context(), cookie); err == nil && username != "" {
				c.Set(identityKey, username) // Store identity in context
			}
		}
		c.Next() // Proceed to the next handler
	}
}

// Identity returns the authenticated username for this request, if any
func Identity(c *gin.Context) (string, bool) {
	v, ok := c.Get(identityKey) // Get identity from context
	if !ok {
		return "", false // No session
	}
	username, ok := v.(string) // Identity is always a string
	return username, ok
}

// RequireOwner permits a request only when the session identity matches the
// :username route parameter. Unauthenticated requests are sent to the login
// page; authenticated ones for someone else's resource are sent back to their
// own profile.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := Identity(c) // Get session identity
		// Unauthenticated access to an owner-scoped route
		if !ok {
			flash.Set(c, flash.Danger, "You need to log in!")
			c.Redirect(http.StatusFound, "/login") // Redirect to login
			c.Abort()
			return
		}
		// Session identity must match the resource owner
		if username != c.Param("username") {
			flash.Set(c, flash.Danger, "You can only access your own profile")
			c.Redirect(http.StatusFound, "/users/"+username) // Redirect to own profile
			c.Abort()
			return
		}
		c.Next() // Owner check passed, proceed
	}
}
