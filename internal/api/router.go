package api

import (
	"feedback_system/internal/middleware" // Session and guard middleware
	"feedback_system/internal/session"    // Session manager

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// NewRouter wires every route to its handler.
// Owner-scoped /users routes sit behind the RequireOwner guard; the
// /feedback/:id routes check ownership in-handler because the owner is only
// known after the record is fetched.
func NewRouter(db *gorm.DB, mgr *session.Manager, templatesGlob string) *gin.Engine {
	r := gin.Default()             // Gin router instance
	r.LoadHTMLGlob(templatesGlob)  // Parse the view templates
	r.Use(middleware.SessionAuth(mgr)) // Resolve the session identity once per request

	// Home and auth routes
	r.GET("/", HomeHandler())                    // Home redirect
	r.GET("/register", RegisterFormHandler())    // Registration form
	r.POST("/register", RegisterHandler(db, mgr)) // Registration submit
	r.GET("/login", LoginFormHandler())          // Login form
	r.POST("/login", LoginHandler(db, mgr))      // Login submit
	r.GET("/logout", LogoutHandler(mgr))         // Logout

	// Owner-scoped user routes (protected by the owner guard)
	users := r.Group("/users/:username")
	users.Use(middleware.RequireOwner())
	users.GET("", ProfileHandler(db))                      // Profile view
	users.POST("/delete", DeleteUserHandler(db, mgr))      // Account deletion
	users.GET("/feedback/add", AddFeedbackFormHandler())   // Add-feedback form
	users.POST("/feedback/add", AddFeedbackHandler(db))    // Add-feedback submit

	// Feedback routes (ownership checked against the fetched record)
	r.GET("/feedback/:id/update", UpdateFeedbackFormHandler(db)) // Edit form
	r.POST("/feedback/:id/update", UpdateFeedbackHandler(db))    // Edit submit
	r.POST("/feedback/:id/delete", DeleteFeedbackHandler(db))    // Delete

	return r
}
