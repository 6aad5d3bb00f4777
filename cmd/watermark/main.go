package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kuzmatsukanov/image-video-editor/internal/infra/config"
	ffmpeginfra "github.com/kuzmatsukanov/image-video-editor/internal/infra/ffmpeg"
	imaginginfra "github.com/kuzmatsukanov/image-video-editor/internal/infra/imaging"
	"github.com/kuzmatsukanov/image-video-editor/internal/infra/progress"
	"github.com/kuzmatsukanov/image-video-editor/internal/infra/scan"
	"github.com/kuzmatsukanov/image-video-editor/internal/usecase"
	"github.com/kuzmatsukanov/image-video-editor/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting watermark batch",
		zap.String("input_dir", cfg.InputDir),
		zap.String("logo", cfg.LogoPath),
		zap.String("output_dir", cfg.OutputDir),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	opacity := uint8(cfg.LogoOpacity)

	scanner := scan.NewScanner(log)
	imageWM := imaginginfra.NewWatermarker(cfg.ImageLogoHeight, cfg.ImageBottomMargin, opacity, log)
	preparer := imaginginfra.NewLogoPreparer(opacity)
	videoWM := ffmpeginfra.NewWatermarker(
		cfg.VideoLogoHeight, cfg.VideoLogoMargin,
		cfg.VideoTrimSeconds, cfg.VideoPlacement,
		preparer, log,
	)

	uc := usecase.NewProcessBatchUseCase(
		scanner, imageWM, videoWM,
		progress.NewReporter(),
		log,
		usecase.ProcessBatchConfig{
			InputDir:        cfg.InputDir,
			LogoPath:        cfg.LogoPath,
			OutputDir:       cfg.OutputDir,
			ContinueOnError: cfg.ContinueOnError,
		},
	)

	result, err := uc.Execute(ctx)
	if err != nil {
		log.Fatal("batch aborted", zap.Error(err))
	}

	log.Info("watermark batch done",
		zap.Int("completed", result.Completed),
		zap.Int("failed", result.Failed),
	)
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
