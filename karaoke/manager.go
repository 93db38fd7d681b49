package karaoke

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mexemexe02/joia-karaoke/models"
)

// Service is the full processor API the manager needs.
type Service interface {
	Submit(ctx context.Context, request models.CreateKaraokeRequest) (*models.JobSnapshot, error)
	StatusFetcher
}

// trackedJob is the in-memory state for one submitted job. Nothing here is
// persisted; a restart forgets all jobs.
type trackedJob struct {
	snapshot   models.JobSnapshot
	poller     *poller
	reconciled bool
}

// Manager owns the lifetime of karaoke creation jobs: it submits them,
// keeps the latest snapshot per job, polls until a terminal status and
// reconciles completed results into the library exactly once.
type Manager struct {
	service    Service
	reconciler *Reconciler
	interval   time.Duration

	mu   sync.Mutex
	jobs map[string]*trackedJob
}

// NewManager creates a Manager polling each job on the given interval.
func NewManager(service Service, reconciler *Reconciler, interval time.Duration) *Manager {
	return &Manager{
		service:    service,
		reconciler: reconciler,
		interval:   interval,
		jobs:       make(map[string]*trackedJob),
	}
}

// Create submits a new job and starts its status loop. When the submit
// fails no job exists and nothing is tracked.
func (m *Manager) Create(ctx context.Context, request models.CreateKaraokeRequest) (*models.JobSnapshot, error) {
	snapshot, err := m.service.Submit(ctx, request)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.jobs[snapshot.JobID] = &trackedJob{snapshot: *snapshot}
	m.mu.Unlock()

	jobID := snapshot.JobID
	title, artist := request.Title, request.Artist
	p := startPoller(m.service, jobID, m.interval, pollCallbacks{
		onUpdate: func(s *models.JobSnapshot) {
			m.applyUpdate(jobID, s)
		},
		onTerminal: func(s *models.JobSnapshot) {
			m.handleTerminal(jobID, title, artist, s)
		},
	})

	m.mu.Lock()
	if job, ok := m.jobs[jobID]; ok {
		job.poller = p
	} else {
		// Dismissed between submit and now; drop the schedule.
		p.Stop()
	}
	m.mu.Unlock()

	return snapshot, nil
}

// Get returns the latest snapshot for a tracked job.
func (m *Manager) Get(jobID string) (models.JobSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return models.JobSnapshot{}, false
	}
	return job.snapshot, true
}

// Dismiss stops a job's polling and forgets its snapshot. The job itself
// keeps running on the processor; there is no remote cancellation.
func (m *Manager) Dismiss(jobID string) bool {
	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if ok {
		delete(m.jobs, jobID)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	if job.poller != nil {
		job.poller.Stop()
	}
	return true
}

// StopAll stops every schedule. Used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, job := range m.jobs {
		if job.poller != nil {
			job.poller.Stop()
		}
	}
}

// applyUpdate records a snapshot. Observations for jobs that are no longer
// tracked (dismissed while a request was in flight) are discarded.
func (m *Manager) applyUpdate(jobID string, snapshot *models.JobSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}
	job.snapshot = *snapshot
}

// handleTerminal runs once per job when the poller first observes a
// terminal status. The reconciled flag guards the insert even if a
// terminal snapshot were ever delivered twice.
func (m *Manager) handleTerminal(jobID, title, artist string, snapshot *models.JobSnapshot) {
	if snapshot.Status == models.JobStatusFailed {
		log.Printf("Karaoke job %s failed: %s", jobID, snapshot.Error)
		return
	}
	if snapshot.Status != models.JobStatusCompleted || snapshot.ResultURL == "" {
		return
	}

	m.mu.Lock()
	job, ok := m.jobs[jobID]
	if !ok || job.reconciled {
		m.mu.Unlock()
		return
	}
	job.reconciled = true
	m.mu.Unlock()

	id, err := m.reconciler.Reconcile(context.Background(), snapshot.ResultURL, title, artist)
	if err != nil {
		log.Printf("Reconciling karaoke job %s: %v", jobID, err)
		m.mu.Lock()
		if job, ok := m.jobs[jobID]; ok {
			job.snapshot.Error = err.Error()
		}
		m.mu.Unlock()
		return
	}

	log.Printf("Karaoke job %s completed, added song %s to the library", jobID, id)
}
