package domain

// Game Model
type Game struct {
	ID   uint   `gorm:"primaryKey" json:"id"`                     // Primary key
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"` // Unique game name
}
