package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Email        string    `gorm:"size:191;uniqueIndex;not null" json:"email"` // Unique login email
	PasswordHash string    `gorm:"size:100;not null" json:"-"`                 // Bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`                                  // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt"`                                  // Last update timestamp
}
