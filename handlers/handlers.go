// Package handlers holds the HTTP layer. main wires the package-level
// collaborators before registering routes.
package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/mexemexe02/joia-karaoke/models"
)

// SongLibrary is what the song handlers need from the library store.
type SongLibrary interface {
	FetchAll(ctx context.Context) ([]models.Song, error)
	Insert(ctx context.Context, in models.NewSong) (uuid.UUID, error)
}

// JobManager is what the karaoke handlers need from the job manager.
type JobManager interface {
	Create(ctx context.Context, request models.CreateKaraokeRequest) (*models.JobSnapshot, error)
	Get(jobID string) (models.JobSnapshot, bool)
	Dismiss(jobID string) bool
}

// Library and Jobs are assigned by main before the app starts listening.
var Library SongLibrary
var Jobs JobManager
