package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kuzmatsukanov/image-video-editor/internal/domain/entity"
	"github.com/kuzmatsukanov/image-video-editor/internal/domain/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeScanner struct {
	result *port.ScanResult
	err    error
}

func (f *fakeScanner) Scan(dir string) (*port.ScanResult, error) {
	return f.result, f.err
}

// fakeWatermarker records Apply calls in order and fails on configured paths.
type fakeWatermarker struct {
	calls   []string
	outs    []string
	failOn  map[string]error
	applied *[]string // shared cross-kind call log
}

func (f *fakeWatermarker) Apply(ctx context.Context, srcPath, logoPath, outPath string) error {
	f.calls = append(f.calls, srcPath)
	f.outs = append(f.outs, outPath)
	if f.applied != nil {
		*f.applied = append(*f.applied, srcPath)
	}
	if err, ok := f.failOn[srcPath]; ok {
		return err
	}
	return nil
}

type noopBar struct{}

func (noopBar) Add(int) {}
func (noopBar) Finish() {}

type noopProgress struct{}

func (noopProgress) Start(string, int) port.ProgressBar { return noopBar{} }

func newUseCase(t *testing.T, scanner port.FolderScanner, videos, images *fakeWatermarker, continueOnError bool) (*ProcessBatchUseCase, string) {
	t.Helper()
	outDir := filepath.Join(t.TempDir(), "out")
	uc := NewProcessBatchUseCase(scanner, images, videos, noopProgress{}, zap.NewNop(), ProcessBatchConfig{
		InputDir:        "in",
		LogoPath:        "logo.png",
		OutputDir:       outDir,
		ContinueOnError: continueOnError,
	})
	return uc, outDir
}

func TestExecuteProcessesVideosThenImages(t *testing.T) {
	var order []string
	videos := &fakeWatermarker{applied: &order}
	images := &fakeWatermarker{applied: &order}
	scanner := &fakeScanner{result: &port.ScanResult{
		Videos: []string{"in/a.MOV", "in/b.mov"},
		Images: []string{"in/c.HEIC"},
	}}

	uc, outDir := newUseCase(t, scanner, videos, images, false)
	result, err := uc.Execute(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"in/a.MOV", "in/b.mov", "in/c.HEIC"}, order)
	assert.Equal(t, []string{
		filepath.Join(outDir, "a_logo.MP4"),
		filepath.Join(outDir, "b_logo.MP4"),
	}, videos.outs)
	assert.Equal(t, []string{filepath.Join(outDir, "c_logo.jpg")}, images.outs)

	assert.Equal(t, 3, result.Completed)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Jobs, 3)
	for _, job := range result.Jobs {
		assert.Equal(t, entity.JobStatusCompleted, job.Status)
	}

	// Output directory is created up front.
	_, err = os.Stat(outDir)
	assert.NoError(t, err)
}

func TestExecuteAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("encode failed")
	videos := &fakeWatermarker{failOn: map[string]error{"in/b.mov": boom}}
	images := &fakeWatermarker{}
	scanner := &fakeScanner{result: &port.ScanResult{
		Videos: []string{"in/a.MOV", "in/b.mov", "in/c.mov"},
		Images: []string{"in/d.HEIC"},
	}}

	uc, _ := newUseCase(t, scanner, videos, images, false)
	result, err := uc.Execute(t.Context())

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	// c.mov and the image list are never reached.
	assert.Equal(t, []string{"in/a.MOV", "in/b.mov"}, videos.calls)
	assert.Empty(t, images.calls)

	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, entity.JobStatusFailed, result.Jobs[1].Status)
	assert.Equal(t, "encode failed", result.Jobs[1].ErrorMessage)
}

func TestExecuteContinueOnError(t *testing.T) {
	videos := &fakeWatermarker{failOn: map[string]error{"in/a.MOV": errors.New("bad clip")}}
	images := &fakeWatermarker{}
	scanner := &fakeScanner{result: &port.ScanResult{
		Videos: []string{"in/a.MOV", "in/b.mov"},
		Images: []string{"in/c.HEIC"},
	}}

	uc, _ := newUseCase(t, scanner, videos, images, true)
	result, err := uc.Execute(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []string{"in/a.MOV", "in/b.mov"}, videos.calls)
	assert.Equal(t, []string{"in/c.HEIC"}, images.calls)
	assert.Equal(t, 2, result.Completed)
	assert.Equal(t, 1, result.Failed)
}

func TestExecuteScanError(t *testing.T) {
	scanner := &fakeScanner{err: errors.New("no such dir")}
	uc, _ := newUseCase(t, scanner, &fakeWatermarker{}, &fakeWatermarker{}, false)

	_, err := uc.Execute(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan folder")
}
