package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mexemexe02/joia-karaoke/library"
	"github.com/mexemexe02/joia-karaoke/models"
	"github.com/mexemexe02/joia-karaoke/youtube"
)

// songResponse is a Song enriched with the derived thumbnail URL. An empty
// thumbnail_url means no thumbnail is available and the client falls back
// to a placeholder.
type songResponse struct {
	models.Song
	ThumbnailURL string `json:"thumbnail_url"`
}

// GetSongs lists the library ordered by artist and title, with the
// optional search, language and duet filters applied.
func GetSongs(c *fiber.Ctx) error {
	songs, err := Library.FetchAll(c.Context())
	if err != nil {
		log.Printf("Fetching songs failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load the song library. Please reload."})
	}

	search := c.Query("search", "")
	language := c.Query("language", library.FilterAll)
	duet := c.Query("duet", library.FilterAll)

	visible := library.Filter(songs, search, language, duet)

	response := make([]songResponse, 0, len(visible))
	for _, song := range visible {
		entry := songResponse{Song: song}
		if song.Type == models.SongTypeYouTube {
			entry.ThumbnailURL = youtube.ThumbnailURL(song.SourceURL)
		}
		response = append(response, entry)
	}

	return c.JSON(fiber.Map{
		"songs": response,
		"shown": len(visible),
		"total": len(songs),
	})
}

// GetLanguages returns the distinct language codes in the library, for the
// language filter options.
func GetLanguages(c *fiber.Ctx) error {
	songs, err := Library.FetchAll(c.Context())
	if err != nil {
		log.Printf("Fetching songs for languages failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load the song library. Please reload."})
	}

	return c.JSON(fiber.Map{"languages": library.Languages(songs)})
}

// CreateSong adds one song. Validation runs locally before the insert;
// callers re-fetch the list afterwards for the stored state.
func CreateSong(c *fiber.Ctx) error {
	var in models.NewSong
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}
	if in.Type == "" {
		in.Type = models.SongTypeYouTube
	}

	id, err := Library.Insert(c.Context(), in)
	if err != nil {
		var verr *library.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Reason})
		}
		log.Printf("Inserting song failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not add the song."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Song added.", "song_id": id})
}
