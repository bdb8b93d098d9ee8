package store

import (
	"errors"                           // Error inspection
	"feedback_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// CreateFeedback persists a new feedback record for owner.
// Title and content are required non-empty; the owner must exist.
func CreateFeedback(db *gorm.DB, owner, title, content string) (*domain.Feedback, error) {
	// Validate required fields
	if title == "" || content == "" {
		return nil, ErrEmptyField
	}
	// The owner must reference an existing user at creation time
	if _, err := GetUser(db, owner); err != nil {
		return nil, err
	}
	// Build the feedback record; the id is assigned by the database
	feedback := domain.Feedback{
		Title:    title,   // Feedback title
		Content:  content, // Feedback body
		Username: owner,   // Owner username
	}
	// Save the feedback
	if err := db.Create(&feedback).Error; err != nil {
		return nil, err // Return error if creation fails
	}
	return &feedback, nil // Return the created record with its id
}

// GetFeedback fetches a feedback record by id
func GetFeedback(db *gorm.DB, id uint) (*domain.Feedback, error) {
	var feedback domain.Feedback // Feedback struct to hold data
	if err := db.First(&feedback, id).Error; err != nil {
		// Missing feedback maps to ErrNotFound
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err // Any other database error
	}
	return &feedback, nil // Return the record
}

// UpdateFeedback replaces the title and content of an existing record
func UpdateFeedback(db *gorm.DB, id uint, title, content string) (*domain.Feedback, error) {
	// Validate required fields
	if title == "" || content == "" {
		return nil, ErrEmptyField
	}
	// Fetch the record first so a missing id is recoverable
	feedback, err := GetFeedback(db, id)
	if err != nil {
		return nil, err
	}
	feedback.Title = title     // New title
	feedback.Content = content // New content
	// Persist the updated record
	if err := db.Save(feedback).Error; err != nil {
		return nil, err // Return error if update fails
	}
	return feedback, nil // Return the updated record
}

// DeleteFeedback removes a feedback record by id
func DeleteFeedback(db *gorm.DB, id uint) error {
	res := db.Delete(&domain.Feedback{}, id) // Delete by primary key
	if res.Error != nil {
		return res.Error // Return error if deletion fails
	}
	// No row deleted means the record did not exist
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllFeedbackByOwner removes every feedback record owned by owner.
// Only called as part of user deletion; deleting nothing is not an error.
func DeleteAllFeedbackByOwner(db *gorm.DB, owner string) error {
	return db.Where("username = ?", owner).Delete(&domain.Feedback{}).Error
}

// ListFeedbackByOwner returns all feedback owned by owner in insertion order
func ListFeedbackByOwner(db *gorm.DB, owner string) ([]domain.Feedback, error) {
	var feedback []domain.Feedback // Slice to hold records
	// Query by owner, ordered by id (insertion order)
	if err := db.Where("username = ?", owner).Order("id").Find(&feedback).Error; err != nil {
		return nil, err // Return error if query fails
	}
	return feedback, nil // Return the list
}
