package domain

import "time"

// GraphicsQuality is the closed set of quality presets
type GraphicsQuality string

const (
	QualityLow    GraphicsQuality = "Low"
	QualityMedium GraphicsQuality = "Medium"
	QualityHigh   GraphicsQuality = "High"
	QualityUltra  GraphicsQuality = "Ultra"
)

const (
	DefaultGraphicsQuality = QualityMedium // Applied when a config is created without quality
	DefaultFrameRateLimit  = 60            // Applied when a config is created without a cap
)

// Valid reports whether q is one of the known presets
func (q GraphicsQuality) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh, QualityUltra:
		return true
	}
	return false
}

// Resolution is a display size in pixels
type Resolution struct {
	Width  int `json:"width" bson:"width"`   // Horizontal pixels
	Height int `json:"height" bson:"height"` // Vertical pixels
}

// GameConfig is the per (user, game) settings document
type GameConfig struct {
	ID              string          `json:"_id"`             // Store specific document id
	UserID          uint            `json:"userId"`          // Owner of the settings
	GameID          uint            `json:"gameId"`          // Game the settings apply to
	Resolution      Resolution      `json:"resolution"`      // Display resolution
	GraphicsQuality GraphicsQuality `json:"graphicsQuality"` // Quality preset
	FrameRateLimit  int             `json:"frameRateLimit"`  // Frame-rate cap
	CreatedAt       time.Time       `json:"createdAt"`       // Creation timestamp
	UpdatedAt       time.Time       `json:"updatedAt"`       // Last update timestamp
}

// GameConfigPatch carries the optional fields of a create or update request.
// Nil fields are left untouched.
type GameConfigPatch struct {
	Resolution      *Resolution      `json:"resolution"`
	GraphicsQuality *GraphicsQuality `json:"graphicsQuality"`
	FrameRateLimit  *int             `json:"frameRateLimit"`
}

// Apply merges the non-nil fields of p into cfg
func (p GameConfigPatch) Apply(cfg *GameConfig) {
	if p.Resolution != nil {
		cfg.Resolution = *p.Resolution
	}
	if p.GraphicsQuality != nil {
		cfg.GraphicsQuality = *p.GraphicsQuality
	}
	if p.FrameRateLimit != nil {
		cfg.FrameRateLimit = *p.FrameRateLimit
	}
}
