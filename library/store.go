package library

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mexemexe02/joia-karaoke/models"
)

// Store wraps the songs table. It holds a pool rather than a single
// connection: the HTTP handlers and the job poller query concurrently, and
// a lone pgx.Conn rejects overlapping use.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Store over an open connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FetchAll returns every song ordered by artist, then title. The id is the
// final tiebreak so equal artist/title groups keep a deterministic order.
func (s *Store) FetchAll(ctx context.Context) ([]models.Song, error) {
	query := `SELECT id, title, artist, COALESCE(language, ''), type, source_url,
		duration, key, tempo, duet, notes, created_at, updated_at
		FROM songs ORDER BY artist ASC, title ASC, id ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var song models.Song
		err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.Language, &song.Type,
			&song.SourceURL, &song.Duration, &song.Key, &song.Tempo, &song.Duet,
			&song.Notes, &song.CreatedAt, &song.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning song row: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading songs: %w", err)
	}

	return songs, nil
}

// Insert validates in locally and adds one song. Unset optional fields are
// stored as NULL. Callers wanting the server-assigned timestamps re-fetch.
func (s *Store) Insert(ctx context.Context, in models.NewSong) (uuid.UUID, error) {
	if err := ValidateNewSong(in); err != nil {
		return uuid.Nil, err
	}

	query := `INSERT INTO songs (title, artist, language, type, source_url, duration, key, tempo, duet, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, query,
		in.Title, in.Artist, nilIfEmpty(in.Language), in.Type, in.SourceURL,
		in.Duration, in.Key, in.Tempo, in.Duet, in.Notes).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting song: %w", err)
	}

	return id, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
