package port

// ProgressBar receives cosmetic per-file ticks during iteration. It has no
// effect on ordering or outcome.
type ProgressBar interface {
	Add(n int)
	Finish()
}

type ProgressReporter interface {
	Start(description string, total int) ProgressBar
}
