package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config holds every parameter of a frame generation run.
type Config struct {
	Text       string   `validate:"required"`
	Font       string   `validate:"required"`
	Palette    []string `validate:"required,min=1,dive,hexcolor"`
	FrameCount int      `validate:"min=1"`
	Width      int      `validate:"min=1"`
	OutputDir  string   `validate:"required"`
}

// Monokai-ish colors.
var monokai = []string{"#F92672", "#A6E22E", "#66D9EF", "#AE81FF", "#FD971F"}

// Default returns the ThinThread splash configuration.
func Default() Config {
	palette := make([]string, len(monokai))
	copy(palette, monokai)

	return Config{
		Text:       "ThinThread",
		Font:       "slant",
		Palette:    palette,
		FrameCount: 36,
		Width:      100,
		OutputDir:  "codex-rs/tui2/frames/council",
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate reports the first set of constraint violations, if any.
func (c Config) Validate() error {
	if err := get().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
