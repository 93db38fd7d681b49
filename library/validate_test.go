package library

import (
	"errors"
	"testing"

	"github.com/mexemexe02/joia-karaoke/models"
)

func validYouTubeSong() models.NewSong {
	return models.NewSong{
		Title:     "Never Gonna Give You Up",
		Artist:    "Rick Astley",
		Language:  "en",
		Type:      models.SongTypeYouTube,
		SourceURL: "https://youtu.be/dQw4w9WgXcQ",
	}
}

func TestValidateNewSong(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name   string
		mutate func(*models.NewSong)
		ok     bool
	}{
		{"valid youtube song", func(s *models.NewSong) {}, true},
		{"missing title", func(s *models.NewSong) { s.Title = "" }, false},
		{"missing artist", func(s *models.NewSong) { s.Artist = "" }, false},
		{"missing source url", func(s *models.NewSong) { s.SourceURL = "" }, false},
		{"youtube type with non-video url", func(s *models.NewSong) { s.SourceURL = "https://example.com/not-a-video" }, false},
		{"local type skips url check", func(s *models.NewSong) {
			s.Type = models.SongTypeLocal
			s.SourceURL = "http://jellyfin.local/stream/42"
		}, true},
		{"unknown type", func(s *models.NewSong) { s.Type = "cassette" }, false},
		{"negative duration", func(s *models.NewSong) { s.Duration = intPtr(-1) }, false},
		{"zero tempo", func(s *models.NewSong) { s.Tempo = intPtr(0) }, false},
		{"positive extras", func(s *models.NewSong) {
			s.Duration = intPtr(213)
			s.Tempo = intPtr(117)
		}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			song := validYouTubeSong()
			test.mutate(&song)

			err := ValidateNewSong(song)
			if test.ok && err != nil {
				t.Errorf("ValidateNewSong() = %v, expected nil", err)
			}
			if !test.ok {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("ValidateNewSong() = %v, expected a *ValidationError", err)
				}
			}
		})
	}
}
