package domain

// Ownership records that a user owns a game (user_games join table).
// The composite primary key allows at most one row per (user, game).
type Ownership struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`                         // Foreign key to User
	GameID uint `gorm:"primaryKey;autoIncrement:false"`                         // Foreign key to Game
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // Removed with the user
	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"` // Removed with the game
}

// TableName keeps the join table name stable
func (Ownership) TableName() string {
	return "user_games"
}
