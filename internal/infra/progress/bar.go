// Package progress renders a console progress bar per media class. Purely
// cosmetic: it never affects ordering or outcome.
package progress

import (
	"os"

	"github.com/kuzmatsukanov/image-video-editor/internal/domain/port"
	"github.com/schollz/progressbar/v3"
)

type Reporter struct{}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Start(description string, total int) port.ProgressBar {
	return &bar{inner: progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

type bar struct {
	inner *progressbar.ProgressBar
}

func (b *bar) Add(n int) {
	_ = b.inner.Add(n)
}

func (b *bar) Finish() {
	_ = b.inner.Finish()
}
