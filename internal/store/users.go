package store

import (
	"errors"                           // Error inspection
	"feedback_system/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterUser hashes the password and persists a new user.
// A duplicate username or email surfaces as ErrDuplicate with no partial write.
func RegisterUser(db *gorm.DB, username, password, email, firstName, lastName string) (*domain.User, error) {
	// Hash the password before persisting; plaintext never touches the database
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	// Build the user record with the hashed password
	user := domain.User{
		Username:  username,     // Unique username (primary key)
		Password:  string(hash), // Bcrypt hash
		Email:     email,        // Unique email
		FirstName: firstName,    // First name
		LastName:  lastName,     // Last name
	}
	// Attempt to create the user; uniqueness is enforced by the database
	if err := db.Create(&user).Error; err != nil {
		// Translate driver-level duplicate key errors to ErrDuplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err // Any other database error
	}
	return &user, nil // Return the created user
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown usernames and wrong passwords both return ErrBadCredentials so the
// caller cannot distinguish the two.
func Authenticate(db *gorm.DB, username, password string) (*domain.User, error) {
	var user domain.User // Fetch user from database
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		// Unknown user maps to the same error as a wrong password
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err // Any other database error
	}
	// Compare provided password with stored hash (constant-time inside bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return &user, nil // Return the authenticated user
}

// GetUser fetches a user by username
func GetUser(db *gorm.DB, username string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		// Missing user maps to ErrNotFound
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err // Any other database error
	}
	return &user, nil // Return the user
}

// DeleteUser removes a user and all feedback they own.
// The cascade is explicit and transactional; the schema additionally carries an
// ON DELETE CASCADE foreign key as a backstop.
func DeleteUser(db *gorm.DB, username string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Delete all feedback owned by the user first
		if err := DeleteAllFeedbackByOwner(tx, username); err != nil {
			return err // Return error to rollback
		}
		// Delete the user row itself
		res := tx.Where("username = ?", username).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error // Return error to rollback
		}
		// No row deleted means the user did not exist
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil // Commit transaction
	})
}
