// Package handlers maps HTTP requests onto the typed repositories.
// All request-body validation happens here; repositories never see
// invalid data.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts the numeric :id path parameter
func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}
