// Package library holds the song collection logic: the view filter, the
// insert validation rules and the PostgreSQL-backed store.
package library

import (
	"sort"
	"strings"

	"github.com/mexemexe02/joia-karaoke/models"
)

// Sentinel selector value meaning "do not filter on this field".
const FilterAll = "all"

// Filter computes the visible subset of songs. The three predicates are
// applied conjunctively: case-insensitive substring match on title or
// artist, exact language match, and duet flag match ("yes"/"no"). The
// relative order of the input is preserved and the input is never mutated.
func Filter(songs []models.Song, search, language, duet string) []models.Song {
	filtered := make([]models.Song, 0, len(songs))

	query := strings.ToLower(search)
	wantDuet := duet == "yes"

	for _, song := range songs {
		if query != "" &&
			!strings.Contains(strings.ToLower(song.Title), query) &&
			!strings.Contains(strings.ToLower(song.Artist), query) {
			continue
		}
		if language != FilterAll && song.Language != language {
			continue
		}
		if duet != FilterAll && song.Duet != wantDuet {
			continue
		}
		filtered = append(filtered, song)
	}

	return filtered
}

// Languages returns the sorted set of distinct non-empty language codes
// present in the song set, for the language selector options.
func Languages(songs []models.Song) []string {
	seen := make(map[string]bool)
	for _, song := range songs {
		if song.Language != "" {
			seen[song.Language] = true
		}
	}

	languages := make([]string, 0, len(seen))
	for language := range seen {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}
