package port

import "context"

// ImageWatermarker composites a logo onto a still image and writes the
// result to outPath. The source file is never modified.
type ImageWatermarker interface {
	Apply(ctx context.Context, srcPath, logoPath, outPath string) error
}

// VideoWatermarker composites a logo onto every frame of a video, trims the
// leading segment, and writes the re-encoded result to outPath.
type VideoWatermarker interface {
	Apply(ctx context.Context, srcPath, logoPath, outPath string) error
}

// LogoPreparer applies the configured opacity to a logo image and returns a
// path to the prepared file. cleanup releases any temporary file created;
// it is always safe to call.
type LogoPreparer interface {
	Prepare(ctx context.Context, logoPath string) (preparedPath string, cleanup func(), err error)
}
