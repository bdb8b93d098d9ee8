package domain

// Feedback Model
type Feedback struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                   // Auto-incrementing primary key
	Title    string `gorm:"size:100;not null" json:"title"`         // Feedback title
	Content  string `gorm:"type:text;not null" json:"content"`      // Feedback body
	Username string `gorm:"size:20;index;not null" json:"username"` // Foreign key to User (owner)
}

// TableName keeps the singular table name used by the schema
func (Feedback) TableName() string {
	return "feedback"
}
