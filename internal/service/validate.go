package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"

	"maets/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// graphics_quality accepts the domain presets only
	if err := v.RegisterValidation("graphics_quality", func(fl validator.FieldLevel) bool {
		return domain.GraphicsQuality(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// configRules mirrors the constraints of a configuration document.
type configRules struct {
	GraphicsQuality string `validate:"graphics_quality"`
	FrameRateLimit  int    `validate:"gte=0"`
	Width           int    `validate:"gte=0"`
	Height          int    `validate:"gte=0"`
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func validateConfig(cfg *domain.GameConfig) error {
	err := validate.Struct(configRules{
		GraphicsQuality: string(cfg.GraphicsQuality),
		FrameRateLimit:  cfg.FrameRateLimit,
		Width:           cfg.Resolution.Width,
		Height:          cfg.Resolution.Height,
	})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return oops.Code(CodeValidation).Wrap(err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return oops.Code(CodeValidation).Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Field() {
	case "GraphicsQuality":
		return fmt.Sprintf("graphicsQuality must be one of Low, Medium, High, Ultra (got %q)", fe.Value())
	case "FrameRateLimit":
		return "frameRateLimit must not be negative"
	default:
		return "resolution " + strings.ToLower(fe.Field()) + " must not be negative"
	}
}
