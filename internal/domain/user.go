package domain

// User Model
type User struct {
	Username  string     `gorm:"primaryKey;size:20" json:"username"`                                                            // Primary key, immutable
	Password  string     `gorm:"not null" json:"-"`                                                                             // Bcrypt hash, never exposed
	Email     string     `gorm:"size:50;unique;not null" json:"email"`                                                          // Unique email
	FirstName string     `gorm:"size:30;not null" json:"first_name"`                                                            // First name
	LastName  string     `gorm:"size:30;not null" json:"last_name"`                                                             // Last name
	Feedback  []Feedback `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"feedback,omitempty"` // One-to-many relationship with Feedback
}
