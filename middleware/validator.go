package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ValidateFilterQuery checks the "duet" query parameter of a song listing
// request. Anything other than all/yes/no is a 400 Bad Request.
func ValidateFilterQuery(c *fiber.Ctx) error {
	duet := c.Query("duet", "all")
	if duet != "all" && duet != "yes" && duet != "no" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid duet filter",
			"message": "The duet filter must be one of all, yes or no.",
		})
	}
	return c.Next()
}
