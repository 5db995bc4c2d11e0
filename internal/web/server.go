package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"newtab/internal/access"
	"newtab/internal/links"
	"newtab/internal/search"
)

//go:embed templates/*.html static/*.js static/*.css
var assetsFS embed.FS

// ThemeCookie holds the client's color mode.
const ThemeCookie = "newtab_color_mode"

const defaultTheme = "dark"

type Options struct {
	EngineURL  string
	RequestURL string
}

// Handler renders the gate and grid screens.
type Handler struct {
	gate *access.Gate
	repo *links.Repository
	tmpl *template.Template
	opts Options
}

func NewHandler(gate *access.Gate, repo *links.Repository, opts Options) (*Handler, error) {
	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{gate: gate, repo: repo, tmpl: tmpl, opts: opts}, nil
}

type gatePage struct {
	Theme      string
	Status     *access.Status
	RequestURL string
}

type gridPage struct {
	Theme      string
	Categories []string
	Selected   string
	Links      []links.Link
}

// Index handles GET /
func (h *Handler) Index(c *fiber.Ctx) error {
	ok, status := h.gate.Check(c)
	if !ok {
		return h.renderGate(c, fiber.StatusOK, status)
	}
	return h.renderGrid(c)
}

// SubmitKey handles POST / from the gate form.
func (h *Handler) SubmitKey(c *fiber.Ctx) error {
	ok, status := h.gate.Submit(c, c.FormValue("key"))
	if !ok {
		return h.renderGate(c, fiber.StatusUnauthorized, &status)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Search handles GET /search
func (h *Handler) Search(c *fiber.Ctx) error {
	target := search.Resolve(c.Query("q"), h.opts.EngineURL)
	if target == "" {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Redirect(target, fiber.StatusFound)
}

func (h *Handler) renderGate(c *fiber.Ctx, code int, status *access.Status) error {
	return h.render(c, code, "gate.html", gatePage{
		Theme:      theme(c),
		Status:     status,
		RequestURL: h.opts.RequestURL,
	})
}

func (h *Handler) renderGrid(c *fiber.Ctx) error {
	all, err := h.repo.List(c.Context())
	if err != nil {
		log.Printf("ERROR: fetch links: %v", err)
		all = nil
	}
	links.SortByOrder(all)

	selected := strings.TrimSpace(c.Query("category"))
	if selected == "" {
		selected = links.AllCategory
	}
	return h.render(c, fiber.StatusOK, "grid.html", gridPage{
		Theme:      theme(c),
		Categories: links.Categories(all),
		Selected:   selected,
		Links:      links.Filter(all, selected),
	})
}

func (h *Handler) render(c *fiber.Ctx, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Status(code).Send(buf.Bytes())
}

func theme(c *fiber.Ctx) string {
	if c.Cookies(ThemeCookie) == "light" {
		return "light"
	}
	return defaultTheme
}

// RegisterRoutes mounts the pages and static assets. None of them require a key;
// the gate decides what GET / shows.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(assetsFS),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	app.Get("/", h.Index)
	app.Post("/", h.SubmitKey)
	app.Get("/search", h.Search)
}
