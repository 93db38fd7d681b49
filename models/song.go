package models

import (
	"time"

	"github.com/google/uuid"
)

// SongType tells where a song's media lives.
type SongType string

const (
	SongTypeYouTube SongType = "youtube"
	SongTypeLocal   SongType = "local"
)

// Song represents a row of the songs table.
type Song struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Language  string    `json:"language"`
	Type      SongType  `json:"type"`
	SourceURL string    `json:"source_url"`
	Duration  *int      `json:"duration"`
	Key       *string   `json:"key"`
	Tempo     *int      `json:"tempo"`
	Duet      bool      `json:"duet"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSong carries the fields a caller may supply when adding a song.
// The id and the timestamps are assigned by the database on insert.
type NewSong struct {
	Title     string   `json:"title"`
	Artist    string   `json:"artist"`
	Language  string   `json:"language"`
	Type      SongType `json:"type"`
	SourceURL string   `json:"source_url"`
	Duration  *int     `json:"duration"`
	Key       *string  `json:"key"`
	Tempo     *int     `json:"tempo"`
	Duet      bool     `json:"duet"`
	Notes     *string  `json:"notes"`
}
