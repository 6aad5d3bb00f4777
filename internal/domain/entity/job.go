package entity

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// Job tracks one file through a watermarking batch. Jobs live in memory for
// the duration of a single run only.
type Job struct {
	ID           uuid.UUID
	InputPath    string
	OutputPath   string
	Kind         MediaKind
	Status       JobStatus
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}

func NewJob(inputPath, outputDir string, kind MediaKind) *Job {
	now := time.Now().UTC()
	return &Job{
		ID:         uuid.New(),
		InputPath:  inputPath,
		OutputPath: OutputPath(outputDir, inputPath, kind),
		Kind:       kind,
		Status:     JobStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (j *Job) MarkProcessing() {
	j.Status = JobStatusProcessing
	j.UpdatedAt = time.Now().UTC()
}

func (j *Job) MarkCompleted() {
	now := time.Now().UTC()
	j.Status = JobStatusCompleted
	j.UpdatedAt = now
	j.CompletedAt = &now
}

func (j *Job) MarkFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.ErrorMessage = errMsg
	j.UpdatedAt = time.Now().UTC()
}
