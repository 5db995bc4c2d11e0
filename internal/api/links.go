package api

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"newtab/internal/links"
)

type LinkHandler struct {
	repo *links.Repository
}

func NewLinkHandler(repo *links.Repository) *LinkHandler {
	return &LinkHandler{repo: repo}
}

// List handles GET /api/links
func (h *LinkHandler) List(c *fiber.Ctx) error {
	all, err := h.repo.List(c.Context())
	if err != nil {
		return fmt.Errorf("list links: %w", err)
	}
	if all == nil {
		all = []links.Link{}
	}
	return c.JSON(fiber.Map{
		"data":       all,
		"categories": links.Categories(all),
	})
}

// Create handles POST /api/links
func (h *LinkHandler) Create(c *fiber.Ctx) error {
	var body links.NewLink
	if err := c.BodyParser(&body); err != nil {
		return NewAppError("INVALID_PAYLOAD", 400, "Invalid request body")
	}

	if missing := body.Missing(); len(missing) > 0 {
		details := make([]ErrorDetail, 0, len(missing))
		for _, f := range missing {
			details = append(details, ErrorDetail{Field: f, Rule: "required", Message: f + " is required"})
		}
		return ValidationError(details)
	}

	link, err := h.repo.Insert(c.Context(), body)
	if err != nil {
		return fmt.Errorf("create link: %w", err)
	}

	resp := fiber.Map{"data": link}
	if all, err := h.repo.List(c.Context()); err != nil {
		log.Printf("WARN: reload categories after insert: %v", err)
	} else {
		resp["categories"] = links.Categories(all)
	}
	return c.Status(201).JSON(resp)
}

// Reorder handles POST /api/links/reorder
func (h *LinkHandler) Reorder(c *fiber.Ctx) error {
	var body struct {
		ActiveID int64 `json:"active_id"`
		OverID   int64 `json:"over_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return NewAppError("INVALID_PAYLOAD", 400, "Invalid request body")
	}
	if body.ActiveID == 0 || body.OverID == 0 {
		return ValidationError([]ErrorDetail{{Rule: "required", Message: "active_id and over_id are required"}})
	}

	moved, err := h.repo.Reorder(c.Context(), body.ActiveID, body.OverID)
	if err != nil {
		if errors.Is(err, links.ErrLinkNotFound) {
			return NotFoundError(err.Error())
		}
		return fmt.Errorf("reorder links: %w", err)
	}

	return c.JSON(fiber.Map{"data": moved})
}

// RegisterLinkRoutes mounts the link API behind the given middleware.
func RegisterLinkRoutes(app *fiber.App, h *LinkHandler, middleware ...fiber.Handler) {
	api := app.Group("/api/links", middleware...)

	api.Get("/", h.List)
	api.Post("/", h.Create)
	api.Post("/reorder", h.Reorder)
}
