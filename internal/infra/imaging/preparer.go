package imaging

import (
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
)

// LogoPreparer materializes an opacity-adjusted copy of a logo for consumers
// that read the logo from disk (the video pipeline). At full opacity the
// original path is handed back without touching the file.
type LogoPreparer struct {
	opacity uint8
}

func NewLogoPreparer(opacity uint8) *LogoPreparer {
	return &LogoPreparer{opacity: opacity}
}

func (p *LogoPreparer) Prepare(ctx context.Context, logoPath string) (string, func(), error) {
	noop := func() {}
	if err := ctx.Err(); err != nil {
		return "", noop, err
	}
	if p.opacity == 255 {
		return logoPath, noop, nil
	}

	logo, err := imaging.Open(logoPath)
	if err != nil {
		return "", noop, fmt.Errorf("decode logo %s: %w", logoPath, err)
	}
	flat := FlattenOpacity(imaging.Clone(logo), p.opacity)

	tmp, err := os.CreateTemp("", "logo-*.png")
	if err != nil {
		return "", noop, fmt.Errorf("create temp logo: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return "", noop, fmt.Errorf("close temp logo: %w", err)
	}

	// PNG keeps the rewritten alpha channel intact.
	if err := imaging.Save(flat, tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", noop, fmt.Errorf("encode temp logo: %w", err)
	}

	return tmpPath, func() { os.Remove(tmpPath) }, nil
}
