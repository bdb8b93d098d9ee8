package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"feedback_system/internal/domain"     // Importing domain models
	"feedback_system/internal/flash"      // Flash messages
	"feedback_system/internal/middleware" // Session identity helpers
	"feedback_system/internal/store"      // Feedback store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// FeedbackRequest carries the feedback form fields
type FeedbackRequest struct {
	Title   string `form:"title" binding:"required"`   // Title must be provided
	Content string `form:"content" binding:"required"` // Content must be provided
}

// ownedFeedback parses the :id param, fetches the record, and enforces the
// ownership rule for the feedback routes. On refusal it writes the redirect
// itself and returns false; a missing id is recoverable, not fatal.
func ownedFeedback(c *gin.Context, db *gorm.DB) (*domain.Feedback, bool) {
	username, ok := middleware.Identity(c) // Get session identity
	// Unauthenticated access to a feedback route
	if !ok {
		flash.Set(c, flash.Danger, "You need to log in!")
		c.Redirect(http.StatusFound, "/login")
		return nil, false
	}
	// Parse the feedback id from the route
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		flash.Set(c, flash.Danger, "Feedback not found")
		c.Redirect(http.StatusFound, "/users/"+username)
		return nil, false
	}
	// Fetch the record
	feedback, err := store.GetFeedback(db, uint(id))
	if err != nil {
		// Missing record: redirect instead of faulting
		if errors.Is(err, store.ErrNotFound) {
			flash.Set(c, flash.Danger, "Feedback not found")
			c.Redirect(http.StatusFound, "/users/"+username)
			return nil, false
		}
		logrus.WithFields(logrus.Fields{
			"feedback_id": id,          // Requested feedback id
			"error":       err.Error(), // Error message
		}).Error("Feedback lookup failed") // Log lookup failure
		c.String(http.StatusInternalServerError, "something went wrong")
		return nil, false
	}
	// Only the owner may touch the record
	if feedback.Username != username {
		flash.Set(c, flash.Danger, "You can only manage your own feedback")
		c.Redirect(http.StatusFound, "/users/"+username)
		return nil, false
	}
	return feedback, true // Ownership check passed
}

// AddFeedbackFormHandler shows the add-feedback form.
// The owner guard has already run on this route group.
func AddFeedbackFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "add_feedback.html", nil) // Render the form
	}
}

// AddFeedbackHandler creates a feedback record owned by the session user
func AddFeedbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username") // Owner from the route (guard ensures it matches the session)
		var req FeedbackRequest         // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// Missing fields: re-show the form, no state change
			render(c, http.StatusBadRequest, "add_feedback.html", gin.H{
				"Error": "Title and content are required",
			})
			return
		}
		// Create the record with the session user as owner
		feedback, err := store.CreateFeedback(db, username, req.Title, req.Content)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username": username,    // Owner
				"error":    err.Error(), // Error message
			}).Error("Feedback creation failed") // Log creation failure
			render(c, http.StatusInternalServerError, "add_feedback.html", gin.H{
				"Error": "Could not save your feedback",
			})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"feedback_id": feedback.ID, // New feedback id
			"username":    username,    // Owner
		}).Info("Feedback created") // Log creation success
		c.Redirect(http.StatusFound, "/users/"+username) // Redirect to profile
	}
}

// UpdateFeedbackFormHandler shows the edit form prefilled with the record
func UpdateFeedbackFormHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, ok := ownedFeedback(c, db) // Fetch and guard
		if !ok {
			return // Redirect already written
		}
		// Render the form prefilled with the current values
		render(c, http.StatusOK, "update_feedback.html", gin.H{
			"Feedback": feedback,
		})
	}
}

// UpdateFeedbackHandler replaces the title and content of an owned record
func UpdateFeedbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, ok := ownedFeedback(c, db) // Fetch and guard
		if !ok {
			return // Redirect already written
		}
		var req FeedbackRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// Missing fields: re-show the form, no state change
			render(c, http.StatusBadRequest, "update_feedback.html", gin.H{
				"Error":    "Title and content are required",
				"Feedback": feedback,
			})
			return
		}
		// Persist the new title and content
		if _, err := store.UpdateFeedback(db, feedback.ID, req.Title, req.Content); err != nil {
			logrus.WithFields(logrus.Fields{
				"feedback_id": feedback.ID, // Feedback id
				"error":       err.Error(), // Error message
			}).Error("Feedback update failed") // Log update failure
			render(c, http.StatusInternalServerError, "update_feedback.html", gin.H{
				"Error":    "Could not update your feedback",
				"Feedback": feedback,
			})
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{
			"feedback_id": feedback.ID,       // Feedback id
			"username":    feedback.Username, // Owner
		}).Info("Feedback updated") // Log update success
		c.Redirect(http.StatusFound, "/users/"+feedback.Username) // Redirect to profile
	}
}

// DeleteFeedbackHandler removes an owned feedback record
func DeleteFeedbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, ok := ownedFeedback(c, db) // Fetch and guard
		if !ok {
			return // Redirect already written
		}
		// Delete the record
		if err := store.DeleteFeedback(db, feedback.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			logrus.WithFields(logrus.Fields{
				"feedback_id": feedback.ID, // Feedback id
				"error":       err.Error(), // Error message
			}).Error("Feedback deletion failed") // Log deletion failure
			flash.Set(c, flash.Danger, "Could not delete your feedback")
			c.Redirect(http.StatusFound, "/users/"+feedback.Username)
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"feedback_id": feedback.ID,       // Deleted feedback id
			"username":    feedback.Username, // Owner
		}).Info("Feedback deleted") // Log deletion success
		c.Redirect(http.StatusFound, "/users/"+feedback.Username) // Redirect to profile
	}
}
