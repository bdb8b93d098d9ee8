package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"feedback_system/internal/flash"      // Flash messages
	"feedback_system/internal/middleware" // Session identity helpers
	"feedback_system/internal/session"    // Session manager
	"feedback_system/internal/store"      // Credential store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	Username  string `form:"username" binding:"required"`   // Username must be provided
	Password  string `form:"password" binding:"required"`   // Password must be provided
	Email     string `form:"email" binding:"required"`      // Email must be provided
	FirstName string `form:"first_name" binding:"required"` // First name must be provided
	LastName  string `form:"last_name" binding:"required"`  // Last name must be provided
}

// LoginRequest carries the login form fields
type LoginRequest struct {
	Username string `form:"username" binding:"required"` // Username must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

// startSession creates a session for username and sets the session cookie
func startSession(c *gin.Context, mgr *session.Manager, username string) error {
	token, err := mgr.Start(c.Request.Context(), username) // Create the session
	if err != nil {
		return err // Return error if session creation fails
	}
	// Set the signed session cookie, expiring with the session
	c.SetCookie(session.CookieName, token, int(mgr.TTL().Seconds()), "/", "", false, true)
	return nil
}

// clearSession destroys the current session and removes the cookie
func clearSession(c *gin.Context, mgr *session.Manager) {
	// Destroy the Redis-side session, if the cookie resolves to one
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		_ = mgr.Destroy(c.Request.Context(), cookie)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true) // Remove the cookie
}

// HomeHandler redirects to the register page or to the user's own profile
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := middleware.Identity(c) // Get session identity
		// No session: send to registration
		if !ok {
			flash.Set(c, flash.Danger, "You need to register or log in!")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		c.Redirect(http.StatusFound, "/users/"+username) // Redirect to own profile
	}
}

// RegisterFormHandler shows the registration form
func RegisterFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "register.html", nil) // Render the form
	}
}

// RegisterHandler creates a user from the submitted form and logs them in
func RegisterHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// Missing fields: re-show the form, no state change
			render(c, http.StatusBadRequest, "register.html", gin.H{
				"Error": "All fields are required",
			})
			return
		}
		// Create the user with a hashed password
		user, err := store.RegisterUser(db, req.Username, req.Password, req.Email, req.FirstName, req.LastName)
		if err != nil {
			// Duplicate username or email: re-show the form with a message
			if errors.Is(err, store.ErrDuplicate) {
				render(c, http.StatusOK, "register.html", gin.H{
					"Error": "This username already exists",
				})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Registration failed") // Log registration failure
			render(c, http.StatusInternalServerError, "register.html", gin.H{
				"Error": "Registration failed",
			})
			return
		}
		// Log the new user in immediately
		if err := startSession(c, mgr, user.Username); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // New username
				"error":    err.Error(),   // Error message
			}).Error("Session start failed") // Log session failure
			flash.Set(c, flash.Danger, "Registration succeeded, please log in")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"username": user.Username, // New username
			"email":    user.Email,    // New email
		}).Info("User registered") // Log registration success
		flash.Set(c, flash.Success, "You have been registered")
		c.Redirect(http.StatusFound, "/users/"+user.Username) // Redirect to profile
	}
}

// LoginFormHandler shows the login form, or skips it for a live session
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Already logged in: straight to the profile
		if username, ok := middleware.Identity(c); ok {
			c.Redirect(http.StatusFound, "/users/"+username)
			return
		}
		render(c, http.StatusOK, "login.html", nil) // Render the form
	}
}

// LoginHandler authenticates the submitted credentials and starts a session
func LoginHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Already logged in: straight to the profile
		if username, ok := middleware.Identity(c); ok {
			c.Redirect(http.StatusFound, "/users/"+username)
			return
		}
		var req LoginRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// Missing fields: re-show the form, no state change
			render(c, http.StatusBadRequest, "login.html", gin.H{
				"Error": "All fields are required",
			})
			return
		}
		// Verify the credentials against the stored hash
		user, err := store.Authenticate(db, req.Username, req.Password)
		if err != nil {
			// Unknown user and wrong password are indistinguishable here
			if errors.Is(err, store.ErrBadCredentials) {
				render(c, http.StatusOK, "login.html", gin.H{
					"Error": "Invalid username/password",
				})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Login failed") // Log login failure
			render(c, http.StatusInternalServerError, "login.html", gin.H{
				"Error": "Login failed",
			})
			return
		}
		// Start the session for the authenticated user
		if err := startSession(c, mgr, user.Username); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // Username
				"error":    err.Error(),   // Error message
			}).Error("Session start failed") // Log session failure
			render(c, http.StatusInternalServerError, "login.html", gin.H{
				"Error": "Login failed",
			})
			return
		}
		flash.Set(c, flash.Success, "You're logged in!")
		c.Redirect(http.StatusFound, "/users/"+user.Username) // Redirect to profile
	}
}

// LogoutHandler destroys the session and redirects home
func LogoutHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSession(c, mgr) // Destroy session and cookie
		flash.Set(c, flash.Success, "You've logged out successfully")
		c.Redirect(http.StatusFound, "/") // Redirect home
	}
}
