package imaging

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Watermarker composites a resized, opacity-adjusted logo onto still images.
type Watermarker struct {
	logoHeight   int
	bottomMargin int
	opacity      uint8
	logger       *zap.Logger
}

func NewWatermarker(logoHeight, bottomMargin int, opacity uint8, logger *zap.Logger) *Watermarker {
	return &Watermarker{
		logoHeight:   logoHeight,
		bottomMargin: bottomMargin,
		opacity:      opacity,
		logger:       logger,
	}
}

// Apply decodes srcPath and logoPath, overlays the prepared logo centered
// above the bottom margin, and encodes the composite to outPath in the
// format implied by its extension. The source file is left untouched.
func (w *Watermarker) Apply(ctx context.Context, srcPath, logoPath, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("decode image %s: %w", srcPath, err)
	}

	logo, err := imaging.Open(logoPath)
	if err != nil {
		return fmt.Errorf("decode logo %s: %w", logoPath, err)
	}

	resized := resizeToHeight(logo, w.logoHeight)
	prepared := FlattenOpacity(resized, w.opacity)

	pos := placement(src.Bounds(), prepared.Bounds(), w.bottomMargin)
	out := imaging.Overlay(src, prepared, pos, 1.0)

	if err := imaging.Save(out, outPath); err != nil {
		return fmt.Errorf("encode image %s: %w", outPath, err)
	}

	w.logger.Debug("image watermarked",
		zap.String("src", srcPath),
		zap.String("out", outPath),
		zap.Int("logo_width", prepared.Bounds().Dx()),
		zap.Int("logo_height", prepared.Bounds().Dy()),
	)

	return nil
}

// resizeToHeight scales img to the target height with Lanczos resampling.
// The width follows the aspect ratio: round(w * height / h).
func resizeToHeight(img image.Image, height int) *image.NRGBA {
	b := img.Bounds()
	width := int(math.Round(float64(b.Dx()) * float64(height) / float64(b.Dy())))
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// placement anchors the logo horizontally centered and bottomMargin pixels
// above the bottom edge.
func placement(img, logo image.Rectangle, bottomMargin int) image.Point {
	return image.Pt(
		(img.Dx()-logo.Dx())/2,
		img.Dy()-logo.Dy()-bottomMargin,
	)
}
