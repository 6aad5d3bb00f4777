package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Placement anchors for the video overlay. The still-image position is fixed
// (centered, bottom-anchored) and not configurable.
const (
	PlacementBottomCenter = "bottom-center"
	PlacementBottomRight  = "bottom-right"
)

// Config holds every tunable of a batch run. The defaults reproduce the
// tool's stock behavior; environment variables override them.
type Config struct {
	InputDir  string `env:"INPUT_DIR"  envDefault:"."        validate:"required"`
	LogoPath  string `env:"LOGO_PATH"  envDefault:"logo.png" validate:"required"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"out"      validate:"required"`

	// Opacity applied to every non-transparent logo pixel. 255 leaves the
	// logo untouched.
	LogoOpacity int `env:"LOGO_OPACITY" envDefault:"255" validate:"min=0,max=255"`

	ImageLogoHeight   int `env:"IMAGE_LOGO_HEIGHT"   envDefault:"600" validate:"gt=0"`
	ImageBottomMargin int `env:"IMAGE_BOTTOM_MARGIN" envDefault:"50"  validate:"gte=0"`

	VideoLogoHeight  int     `env:"VIDEO_LOGO_HEIGHT"  envDefault:"300" validate:"gt=0"`
	VideoLogoMargin  int     `env:"VIDEO_LOGO_MARGIN"  envDefault:"10"  validate:"gte=0"`
	VideoTrimSeconds float64 `env:"VIDEO_TRIM_SECONDS" envDefault:"4"   validate:"gte=0"`
	VideoPlacement   string  `env:"VIDEO_PLACEMENT"    envDefault:"bottom-center" validate:"oneof=bottom-center bottom-right"`

	// ContinueOnError switches from abort-on-first-failure to
	// skip-and-continue with a failure summary.
	ContinueOnError bool `env:"CONTINUE_ON_ERROR" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
