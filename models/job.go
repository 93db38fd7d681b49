package models

// JobStatus represents the state of a karaoke creation job on the processor.
type JobStatus string

const (
	// JobStatusPending means the job is queued but processing has not started.
	JobStatusPending JobStatus = "pending"

	// JobStatusProcessing means the processor is working on the job.
	JobStatusProcessing JobStatus = "processing"

	// JobStatusCompleted means the job finished and a result URL is available.
	JobStatusCompleted JobStatus = "completed"

	// JobStatusFailed means the processor gave up on the job.
	JobStatusFailed JobStatus = "failed"
)

// String returns the string representation of JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsTerminal returns true once a job can no longer change state.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobSnapshot is the processor's view of one job at a point in time.
// The wire shape matches both the create and the status endpoints.
type JobSnapshot struct {
	JobID     string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message"`
	ResultURL string    `json:"result_url,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// CreateKaraokeRequest is the payload sent to the processor to start a job.
// Everything but the video URL is optional; empty lyrics means the processor
// transcribes them from audio.
type CreateKaraokeRequest struct {
	YouTubeURL string `json:"youtube_url"`
	Lyrics     string `json:"lyrics,omitempty"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
}
