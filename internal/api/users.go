package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"feedback_system/internal/flash"   // Flash messages
	"feedback_system/internal/session" // Session manager
	"feedback_system/internal/store"   // Credential and feedback stores

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ProfileHandler shows a user's details and the feedback they own.
// The owner guard has already run, so :username is the session identity.
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username") // Resource owner from the route
		// Fetch the user record
		user, err := store.GetUser(db, username)
		if err != nil {
			// A live session for a deleted user: back through login
			if errors.Is(err, store.ErrNotFound) {
				flash.Set(c, flash.Danger, "User not found")
				c.Redirect(http.StatusFound, "/login")
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": username,    // Requested profile
				"error":    err.Error(), // Error message
			}).Error("Profile lookup failed") // Log lookup failure
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		// Fetch the feedback owned by the user
		feedback, err := store.ListFeedbackByOwner(db, username)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,    // Requested profile
				"error":    err.Error(), // Error message
			}).Error("Feedback list failed") // Log list failure
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		// Render the profile with the user's feedback
		render(c, http.StatusOK, "profile.html", gin.H{
			"User":     user,     // Profile owner
			"Feedback": feedback, // Owned feedback records
		})
	}
}

// DeleteUserHandler removes the user, their feedback, and the session.
// The owner guard has already run.
func DeleteUserHandler(db *gorm.DB, mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username") // Resource owner from the route
		// Delete the user; owned feedback goes with them
		if err := store.DeleteUser(db, username); err != nil && !errors.Is(err, store.ErrNotFound) {
			logrus.WithFields(logrus.Fields{
				"username": username,    // User being deleted
				"error":    err.Error(), // Error message
			}).Error("User deletion failed") // Log deletion failure
			flash.Set(c, flash.Danger, "Could not delete your account")
			c.Redirect(http.StatusFound, "/users/"+username)
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"username": username, // Deleted username
		}).Info("User deleted") // Log deletion success
		clearSession(c, mgr)              // The deleted user is logged out
		c.Redirect(http.StatusFound, "/") // Redirect home
	}
}
