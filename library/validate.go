package library

import (
	"github.com/mexemexe02/joia-karaoke/models"
	"github.com/mexemexe02/joia-karaoke/youtube"
)

// ValidationError reports a song rejected before any network or database
// call. The reason is safe to show to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateNewSong applies the local insert rules: title, artist and
// source_url are required, the type must be a known variant, a YouTube
// source must carry a valid video id, and numeric extras must be sane.
func ValidateNewSong(in models.NewSong) error {
	if in.Title == "" || in.Artist == "" || in.SourceURL == "" {
		return &ValidationError{"title, artist and source_url are required"}
	}

	switch in.Type {
	case models.SongTypeYouTube:
		if _, ok := youtube.ExtractVideoID(in.SourceURL); !ok {
			return &ValidationError{"invalid YouTube URL, please provide a valid YouTube link"}
		}
	case models.SongTypeLocal:
		// Any URL is accepted for local media.
	default:
		return &ValidationError{"type must be either youtube or local"}
	}

	if in.Duration != nil && *in.Duration < 0 {
		return &ValidationError{"duration must not be negative"}
	}
	if in.Tempo != nil && *in.Tempo <= 0 {
		return &ValidationError{"tempo must be a positive BPM value"}
	}

	return nil
}
