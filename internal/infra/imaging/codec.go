// Package imaging implements the still-image watermarking pipeline on top of
// github.com/disintegration/imaging, plus the logo opacity pre-pass shared
// with the video pipeline.
package imaging

// HEIC decoding registers itself with image.Decode once at process start.
// Every decode path in this package (and anything else using image.Decode)
// picks it up from the shared registry.
import (
	_ "github.com/gen2brain/heic"
)
