package entity

import (
	"path/filepath"
	"strings"
)

// MediaKind classifies a file by the watermarking pipeline it goes through.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindImage MediaKind = "image"
)

// Output suffixes replace the input extension, matching the naming scheme
// downstream tooling expects (videos become MP4, images become JPEG).
const (
	videoOutputSuffix = "_logo.MP4"
	imageOutputSuffix = "_logo.jpg"
)

// KindForPath reports the media kind for a path based on its extension.
// Only .mov (video) and .heic (image) are recognized, case-insensitively.
func KindForPath(path string) (MediaKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mov":
		return KindVideo, true
	case ".heic":
		return KindImage, true
	default:
		return "", false
	}
}

// OutputName derives the output filename for an input: the basename with its
// extension stripped and the kind's suffix appended.
func OutputName(inputPath string, kind MediaKind) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if kind == KindVideo {
		return stem + videoOutputSuffix
	}
	return stem + imageOutputSuffix
}

// OutputPath places the derived output name under outputDir.
func OutputPath(outputDir, inputPath string, kind MediaKind) string {
	return filepath.Join(outputDir, OutputName(inputPath, kind))
}
