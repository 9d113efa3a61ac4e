package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphicsQualityValid(t *testing.T) {
	for _, q := range []GraphicsQuality{QualityLow, QualityMedium, QualityHigh, QualityUltra} {
		assert.True(t, q.Valid(), q)
	}
	for _, q := range []GraphicsQuality{"", "low", "Extreme"} {
		assert.False(t, q.Valid(), q)
	}
}

func TestGameConfigPatchApply(t *testing.T) {
	cfg := GameConfig{
		Resolution:      Resolution{Width: 1920, Height: 1080},
		GraphicsQuality: QualityHigh,
		FrameRateLimit:  60,
	}

	fps := 30
	GameConfigPatch{FrameRateLimit: &fps}.Apply(&cfg)
	assert.Equal(t, 30, cfg.FrameRateLimit)
	assert.Equal(t, QualityHigh, cfg.GraphicsQuality)
	assert.Equal(t, Resolution{Width: 1920, Height: 1080}, cfg.Resolution)

	ultra := QualityUltra
	GameConfigPatch{GraphicsQuality: &ultra, Resolution: &Resolution{Width: 1280, Height: 720}}.Apply(&cfg)
	assert.Equal(t, QualityUltra, cfg.GraphicsQuality)
	assert.Equal(t, Resolution{Width: 1280, Height: 720}, cfg.Resolution)
	assert.Equal(t, 30, cfg.FrameRateLimit)

	before := cfg
	GameConfigPatch{}.Apply(&cfg)
	assert.Equal(t, before, cfg)
}
