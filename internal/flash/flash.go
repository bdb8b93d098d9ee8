package flash

import (
	"encoding/base64" // Cookie-safe encoding
	"encoding/json"   // JSON encoding/decoding

	"github.com/gin-gonic/gin" // Gin web framework
)

// Flash message categories shown to the user
const (
	Success = "success" // Operation succeeded
	Danger  = "danger"  // Operation refused or failed
)

// cookieName is the one-shot cookie carrying the pending flash message
const cookieName = "feedback_flash"

// Message is a transient user-facing notice surviving one redirect
type Message struct {
	Category string `json:"category"` // success or danger
	Text     string `json:"text"`     // Message text
}

// Set stores a flash message to be shown on the next rendered page
func Set(c *gin.Context, category, text string) {
	b, err := json.Marshal(Message{Category: category, Text: text}) // Marshal message to JSON
	if err != nil {
		return // Nothing sensible to do with a marshal failure here
	}
	// Short-lived cookie; it is cleared as soon as a page renders it
	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(b), 60, "/", "", false, true)
}

// Pop returns the pending flash message, if any, and clears it
func Pop(c *gin.Context) *Message {
	val, err := c.Cookie(cookieName) // Read the flash cookie
	if err != nil {
		return nil // No pending message
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true) // Clear the cookie
	raw, err := base64.URLEncoding.DecodeString(val)      // Decode the payload
	if err != nil {
		return nil // Garbage cookie, drop it
	}
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil // Garbage cookie, drop it
	}
	return &m // Return the pending message
}
