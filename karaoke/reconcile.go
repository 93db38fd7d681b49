package karaoke

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mexemexe02/joia-karaoke/models"
)

// Fallbacks used when the creation request did not name the song.
const (
	defaultTitle    = "Karaoke Song"
	defaultArtist   = "Unknown"
	defaultLanguage = "en"
)

// SongInserter is the part of the library the reconciler needs.
type SongInserter interface {
	Insert(ctx context.Context, in models.NewSong) (uuid.UUID, error)
}

// Reconciler turns a completed job's result into a library entry.
type Reconciler struct {
	store SongInserter
}

// NewReconciler creates a Reconciler inserting through store.
func NewReconciler(store SongInserter) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile inserts one YouTube song for resultURL. Callers must invoke it
// at most once per completed job; the manager enforces that with a one-shot
// guard per job id. A failed insert is not retried: the generated video
// still exists on the processor side, only the library entry is missing.
func (r *Reconciler) Reconcile(ctx context.Context, resultURL, title, artist string) (uuid.UUID, error) {
	if title == "" {
		title = defaultTitle
	}
	if artist == "" {
		artist = defaultArtist
	}

	song := models.NewSong{
		Title:     title,
		Artist:    artist,
		Language:  defaultLanguage,
		Type:      models.SongTypeYouTube,
		SourceURL: resultURL,
		Duet:      false,
	}

	id, err := r.store.Insert(ctx, song)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add to library: %w", err)
	}
	return id, nil
}
