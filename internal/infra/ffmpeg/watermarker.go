// Package ffmpeg implements the video watermarking pipeline. The filter
// graph is assembled with ffmpeg-go and executed through the ffmpeg binary.
package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kuzmatsukanov/image-video-editor/internal/domain/port"
	ffmpeggo "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// ErrVideoTooShort is returned when the source is not longer than the lead
// trim, which would leave nothing to encode.
var ErrVideoTooShort = errors.New("video is shorter than the lead trim")

// Watermarker overlays a logo onto every frame of a video, drops the leading
// trim, and re-encodes without audio.
type Watermarker struct {
	logoHeight  int
	logoMargin  int
	trimSeconds float64
	placement   string
	logos       port.LogoPreparer
	logger      *zap.Logger
}

func NewWatermarker(
	logoHeight, logoMargin int,
	trimSeconds float64,
	placement string,
	logos port.LogoPreparer,
	logger *zap.Logger,
) *Watermarker {
	return &Watermarker{
		logoHeight:  logoHeight,
		logoMargin:  logoMargin,
		trimSeconds: trimSeconds,
		placement:   placement,
		logos:       logos,
		logger:      logger,
	}
}

// Apply probes srcPath, rejects sources not longer than the trim, and writes
// the composited, trimmed, audio-less result to outPath. Re-encoding the
// whole stream makes this by far the most expensive operation in a batch.
func (w *Watermarker) Apply(ctx context.Context, srcPath, logoPath, outPath string) error {
	duration, err := w.probeDuration(srcPath)
	if err != nil {
		return err
	}
	if duration <= w.trimSeconds {
		return fmt.Errorf("%s is %.2fs with a %.2fs trim: %w",
			srcPath, duration, w.trimSeconds, ErrVideoTooShort)
	}

	prepared, cleanup, err := w.logos.Prepare(ctx, logoPath)
	if err != nil {
		return err
	}
	defer cleanup()

	compiled := w.graph(srcPath, prepared, outPath).Compile()
	cmd := exec.CommandContext(ctx, compiled.Args[0], compiled.Args[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg error: %w, output: %s", err, string(output))
	}

	w.logger.Info("video watermarked",
		zap.String("src", srcPath),
		zap.String("out", outPath),
		zap.Float64("source_duration", duration),
		zap.Float64("trimmed", w.trimSeconds),
	)

	return nil
}

// graph builds: logo scaled to the configured height (aspect preserved),
// padded with a transparent margin on the right and bottom, overlaid on the
// video at the configured anchor, then trimmed from the start. Only the
// filtered video stream is mapped into the output, so the audio track is
// discarded.
func (w *Watermarker) graph(srcPath, logoPath, outPath string) *ffmpeggo.Stream {
	video := ffmpeggo.Input(srcPath)
	logo := ffmpeggo.Input(logoPath).
		Filter("scale", ffmpeggo.Args{"-1", strconv.Itoa(w.logoHeight)}).
		Filter("format", ffmpeggo.Args{"rgba"}).
		Filter("pad", ffmpeggo.Args{}, ffmpeggo.KwArgs{
			"w":     fmt.Sprintf("iw+%d", w.logoMargin),
			"h":     fmt.Sprintf("ih+%d", w.logoMargin),
			"x":     "0",
			"y":     "0",
			"color": "black@0.0",
		})

	x, y := overlayPosition(w.placement)
	return ffmpeggo.Filter([]*ffmpeggo.Stream{video, logo}, "overlay",
		ffmpeggo.Args{}, ffmpeggo.KwArgs{"x": x, "y": y}).
		Filter("trim", ffmpeggo.Args{}, ffmpeggo.KwArgs{"start": w.trimSeconds}).
		Filter("setpts", ffmpeggo.Args{"PTS-STARTPTS"}).
		Output(outPath, ffmpeggo.KwArgs{"c:v": "libx264", "pix_fmt": "yuv420p"}).
		OverWriteOutput()
}

// overlayPosition maps a placement name to overlay-filter coordinate
// expressions. Unknown values fall back to bottom-center.
func overlayPosition(placement string) (x, y string) {
	if placement == "bottom-right" {
		return "main_w-overlay_w", "main_h-overlay_h"
	}
	return "(main_w-overlay_w)/2", "main_h-overlay_h"
}

func (w *Watermarker) probeDuration(path string) (float64, error) {
	data, err := ffmpeggo.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("probe video %s: %w", path, err)
	}

	var probed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(data), &probed); err != nil {
		return 0, fmt.Errorf("parse probe output: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(probed.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probed.Format.Duration, err)
	}
	return duration, nil
}
