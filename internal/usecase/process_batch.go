package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/kuzmatsukanov/image-video-editor/internal/domain/entity"
	"github.com/kuzmatsukanov/image-video-editor/internal/domain/port"
	"go.uber.org/zap"
)

// ProcessBatchUseCase scans a folder and watermarks every recognized media
// file, videos first, strictly one at a time.
type ProcessBatchUseCase struct {
	scanner  port.FolderScanner
	images   port.ImageWatermarker
	videos   port.VideoWatermarker
	progress port.ProgressReporter
	logger   *zap.Logger
	cfg      ProcessBatchConfig
}

type ProcessBatchConfig struct {
	InputDir  string
	LogoPath  string
	OutputDir string

	// ContinueOnError skips failed files instead of aborting the batch on
	// the first failure. Off by default: one failure stops the run, already
	// written outputs stay in place.
	ContinueOnError bool
}

// BatchResult summarizes a run. Jobs holds one entry per attempted file in
// processing order.
type BatchResult struct {
	Jobs      []*entity.Job
	Completed int
	Failed    int
}

func NewProcessBatchUseCase(
	scanner port.FolderScanner,
	images port.ImageWatermarker,
	videos port.VideoWatermarker,
	progress port.ProgressReporter,
	logger *zap.Logger,
	cfg ProcessBatchConfig,
) *ProcessBatchUseCase {
	return &ProcessBatchUseCase{
		scanner:  scanner,
		images:   images,
		videos:   videos,
		progress: progress,
		logger:   logger,
		cfg:      cfg,
	}
}

func (uc *ProcessBatchUseCase) Execute(ctx context.Context) (*BatchResult, error) {
	scanned, err := uc.scanner.Scan(uc.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan folder: %w", err)
	}

	if err := os.MkdirAll(uc.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	result := &BatchResult{}

	if err := uc.processList(ctx, result, scanned.Videos, entity.KindVideo,
		"Video files in processing", uc.videos.Apply); err != nil {
		return result, err
	}
	if err := uc.processList(ctx, result, scanned.Images, entity.KindImage,
		"Image files in processing", uc.images.Apply); err != nil {
		return result, err
	}

	uc.logger.Info("batch finished",
		zap.Int("completed", result.Completed),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

type applyFunc func(ctx context.Context, srcPath, logoPath, outPath string) error

func (uc *ProcessBatchUseCase) processList(
	ctx context.Context,
	result *BatchResult,
	files []string,
	kind entity.MediaKind,
	description string,
	apply applyFunc,
) error {
	bar := uc.progress.Start(description, len(files))
	defer bar.Finish()

	for _, f := range files {
		job := entity.NewJob(f, uc.cfg.OutputDir, kind)
		result.Jobs = append(result.Jobs, job)
		job.MarkProcessing()

		log := uc.logger.With(
			zap.String("job_id", job.ID.String()),
			zap.String("input", job.InputPath),
			zap.String("output", job.OutputPath),
		)

		if err := apply(ctx, f, uc.cfg.LogoPath, job.OutputPath); err != nil {
			job.MarkFailed(err.Error())
			result.Failed++
			if !uc.cfg.ContinueOnError {
				return fmt.Errorf("process %s: %w", f, err)
			}
			log.Error("file failed, continuing", zap.Error(err))
			bar.Add(1)
			continue
		}

		job.MarkCompleted()
		result.Completed++
		log.Debug("file completed")
		bar.Add(1)
	}

	return nil
}
