package api

import (
	"feedback_system/internal/flash"      // Flash messages
	"feedback_system/internal/middleware" // Session identity helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// render draws a template with the pending flash message and the session
// identity merged into the view data
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{} // Always hand templates a map
	}
	// Pop the one-shot flash message, if any
	if msg := flash.Pop(c); msg != nil {
		data["Flash"] = msg
	}
	// Expose the logged-in username to the view
	if username, ok := middleware.Identity(c); ok {
		data["Identity"] = username
	}
	c.HTML(status, name, data) // Render the template
}
