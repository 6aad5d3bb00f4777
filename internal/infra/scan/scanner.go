// Package scan lists the immediate children of a directory and partitions
// them into video and image sets by extension. The listing is deliberately
// non-recursive.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kuzmatsukanov/image-video-editor/internal/domain/entity"
	"github.com/kuzmatsukanov/image-video-editor/internal/domain/port"
	"go.uber.org/zap"
)

type Scanner struct {
	logger *zap.Logger
}

func NewScanner(logger *zap.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan returns the recognized media files directly under dir, sorted for a
// deterministic processing order. An empty directory yields an empty result,
// not an error.
func (s *Scanner) Scan(dir string) (*port.ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	res := &port.ScanResult{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kind, ok := entity.KindForPath(e.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch kind {
		case entity.KindVideo:
			res.Videos = append(res.Videos, path)
		case entity.KindImage:
			res.Images = append(res.Images, path)
		}
	}

	sort.Strings(res.Videos)
	sort.Strings(res.Images)

	s.logger.Info("folder scanned",
		zap.String("dir", dir),
		zap.Int("videos", len(res.Videos)),
		zap.Int("images", len(res.Images)),
	)

	return res, nil
}
