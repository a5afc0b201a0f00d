package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// renderProblem renders the generic failure view. Not-found and invalid-input
// cases are deliberately indistinguishable to the client.
func renderProblem(c *fiber.Ctx) error {
	return c.Render("problem", fiber.Map{})
}

// parseID reads the :id route parameter. Anything that is not a positive
// integer is treated like a missing entity.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
