package access

import (
	"github.com/gofiber/fiber/v2"

	"newtab/internal/api"
)

// Handler serves the JSON access check.
type Handler struct {
	gate *Gate
}

func NewHandler(g *Gate) *Handler {
	return &Handler{gate: g}
}

// Submit handles POST /api/access.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var body struct {
		Key string `json:"key" form:"key"`
	}
	if err := c.BodyParser(&body); err != nil {
		return api.NewAppError("INVALID_PAYLOAD", 400, "Invalid request body")
	}

	ok, status := h.gate.Submit(c, body.Key)
	if !ok {
		return api.UnauthorizedError(status.Message)
	}
	return c.JSON(fiber.Map{"data": status})
}

// RegisterRoutes registers the access routes. They are reachable without a key.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/api/access", h.Submit)
}
