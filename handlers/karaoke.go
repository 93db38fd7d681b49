package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mexemexe02/joia-karaoke/karaoke"
	"github.com/mexemexe02/joia-karaoke/models"
	"github.com/mexemexe02/joia-karaoke/youtube"
)

// CreateKaraoke submits a new creation job to the processor and starts
// polling it. The YouTube URL is checked locally before anything leaves
// the process.
func CreateKaraoke(c *fiber.Ctx) error {
	var request models.CreateKaraokeRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	if _, ok := youtube.ExtractVideoID(request.YouTubeURL); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid YouTube URL, please provide a valid YouTube link."})
	}

	snapshot, err := Jobs.Create(c.Context(), request)
	if err != nil {
		var rejection *karaoke.RejectionError
		if errors.As(err, &rejection) {
			log.Printf("Karaoke submission rejected: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "The karaoke service rejected the request."})
		}
		log.Printf("Karaoke submission failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to start karaoke creation."})
	}

	return c.Status(fiber.StatusAccepted).JSON(snapshot)
}

// GetKaraokeJob returns the latest snapshot of a tracked job.
func GetKaraokeJob(c *fiber.Ctx) error {
	jobID := c.Params("jobID")

	snapshot, ok := Jobs.Get(jobID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found."})
	}

	return c.JSON(snapshot)
}

// DismissKaraokeJob stops polling a job and forgets it. The processor side
// keeps running; there is no remote cancellation.
func DismissKaraokeJob(c *fiber.Ctx) error {
	jobID := c.Params("jobID")

	if !Jobs.Dismiss(jobID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found."})
	}

	return c.JSON(fiber.Map{"message": "Job dismissed."})
}
