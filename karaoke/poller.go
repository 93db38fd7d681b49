package karaoke

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mexemexe02/joia-karaoke/models"
)

// StatusFetcher is the part of the processor API the poller needs.
type StatusFetcher interface {
	Status(ctx context.Context, jobID string) (*models.JobSnapshot, error)
}

// pollCallbacks receive the poller's observations. onUpdate fires for every
// snapshot; onTerminal fires exactly once, with the first terminal snapshot.
type pollCallbacks struct {
	onUpdate   func(*models.JobSnapshot)
	onTerminal func(*models.JobSnapshot)
}

// poller runs the fixed-interval status loop for a single job. Only one
// request is ever in flight: the next tick fires after the previous request
// has been handled, so out-of-order observations cannot occur.
type poller struct {
	fetcher  StatusFetcher
	jobID    string
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// startPoller begins polling for jobID and returns a handle to stop it.
// It must only be called once a successful submit has produced the job id.
func startPoller(fetcher StatusFetcher, jobID string, interval time.Duration, callbacks pollCallbacks) *poller {
	p := &poller{
		fetcher:  fetcher,
		jobID:    jobID,
		interval: interval,
		stop:     make(chan struct{}),
	}
	go p.run(callbacks)
	return p
}

func (p *poller) run(callbacks pollCallbacks) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}

		snapshot, err := p.fetcher.Status(context.Background(), p.jobID)
		if err != nil {
			// A failed poll is a transport problem, not a job failure.
			// Keep the schedule and try again on the next tick.
			log.Printf("Polling job %s failed, will retry: %v", p.jobID, err)
			continue
		}

		callbacks.onUpdate(snapshot)

		if snapshot.Status.IsTerminal() {
			callbacks.onTerminal(snapshot)
			return
		}
	}
}

// Stop ends the schedule. An in-flight request is not aborted; its result
// is discarded by the owner once the job is no longer tracked. Stop is safe
// to call more than once and after the loop has already finished.
func (p *poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}
