package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"newtab/internal/config"
	"newtab/internal/links"
	"newtab/internal/store"
)

func testLinkApp(t *testing.T) (*fiber.App, *links.Repository) {
	t.Helper()
	ctx := context.Background()
	s, err := store.New(ctx, config.DatabaseConfig{Driver: "sqlite", Path: t.TempDir(), Name: "api"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	repo := links.NewRepository(s)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterLinkRoutes(app, NewLinkHandler(repo))
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

type listResponse struct {
	Data       []links.Link `json:"data"`
	Categories []string     `json:"categories"`
}

func TestLinks_ListEmpty(t *testing.T) {
	app, _ := testLinkApp(t)

	status, body := doJSON(t, app, "GET", "/api/links", "")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(string(body), `"data":[]`) {
		t.Fatalf("expected empty data array, got %s", body)
	}
	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Categories) != 1 || out.Categories[0] != links.AllCategory {
		t.Fatalf("expected only %q, got %v", links.AllCategory, out.Categories)
	}
}

func TestLinks_CreateValidation(t *testing.T) {
	app, _ := testLinkApp(t)

	status, body := doJSON(t, app, "POST", "/api/links", `{"label":"  ","link":"","category":"Work"}`)
	if status != 422 {
		t.Fatalf("expected 422, got %d: %s", status, body)
	}
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected VALIDATION_FAILED, got %s", errResp.Error.Code)
	}
	if len(errResp.Error.Details) != 2 {
		t.Fatalf("expected 2 details, got %+v", errResp.Error.Details)
	}
}

func TestLinks_CreateBadPayload(t *testing.T) {
	app, _ := testLinkApp(t)

	status, _ := doJSON(t, app, "POST", "/api/links", `{"label":`)
	if status != 400 {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestLinks_CreateAndList(t *testing.T) {
	app, _ := testLinkApp(t)

	status, body := doJSON(t, app, "POST", "/api/links", `{"label":"Mail","link":"mail.example.com","category":"Work"}`)
	if status != 201 {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	var created struct {
		Data       links.Link `json:"data"`
		Categories []string   `json:"categories"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.ID == 0 || created.Data.URL != "https://mail.example.com" || created.Data.Order != 0 {
		t.Fatalf("unexpected created link: %+v", created.Data)
	}
	if strings.Join(created.Categories, ",") != "All,Work" {
		t.Fatalf("unexpected categories: %v", created.Categories)
	}

	doJSON(t, app, "POST", "/api/links", `{"label":"News","link":"https://news.example.com","category":"Read"}`)

	status, body = doJSON(t, app, "GET", "/api/links", "")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data) != 2 || out.Data[0].Label != "Mail" || out.Data[1].Label != "News" {
		t.Fatalf("unexpected list: %+v", out.Data)
	}
	if out.Data[1].Order != 1 {
		t.Fatalf("expected appended order 1, got %d", out.Data[1].Order)
	}
	if strings.Join(out.Categories, ",") != "All,Work,Read" {
		t.Fatalf("unexpected categories: %v", out.Categories)
	}
}

func TestLinks_Reorder(t *testing.T) {
	app, repo := testLinkApp(t)
	ctx := context.Background()

	var ids []int64
	for _, label := range []string{"A", "B", "C"} {
		l, err := repo.Insert(ctx, links.NewLink{Label: label, URL: "example.com"})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		ids = append(ids, l.ID)
	}

	body := `{"active_id":` + itoa(ids[0]) + `,"over_id":` + itoa(ids[2]) + `}`
	status, resp := doJSON(t, app, "POST", "/api/links/reorder", body)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, resp)
	}
	var out listResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var got []string
	for i, l := range out.Data {
		if l.Order != i {
			t.Fatalf("expected order %d at index %d, got %d", i, i, l.Order)
		}
		got = append(got, l.Label)
	}
	if strings.Join(got, "") != "BCA" {
		t.Fatalf("expected BCA, got %v", got)
	}

	stored, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if stored[0].Label != "B" || stored[2].Label != "A" {
		t.Fatalf("reorder not persisted: %+v", stored)
	}
}

func TestLinks_ReorderErrors(t *testing.T) {
	app, repo := testLinkApp(t)
	l, err := repo.Insert(context.Background(), links.NewLink{Label: "A", URL: "example.com"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	status, _ := doJSON(t, app, "POST", "/api/links/reorder", `{"active_id":`+itoa(l.ID)+`}`)
	if status != 422 {
		t.Fatalf("expected 422 for missing over_id, got %d", status)
	}

	status, body := doJSON(t, app, "POST", "/api/links/reorder", `{"active_id":`+itoa(l.ID)+`,"over_id":9999}`)
	if status != 404 {
		t.Fatalf("expected 404 for unknown id, got %d: %s", status, body)
	}
}

func TestErrorHandler_Unknown(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	status, body := doJSON(t, app, "GET", "/boom", "")
	if status != 500 {
		t.Fatalf("expected 500, got %d", status)
	}
	if !strings.Contains(string(body), "INTERNAL_ERROR") {
		t.Fatalf("expected INTERNAL_ERROR, got %s", body)
	}

	status, _ = doJSON(t, app, "GET", "/missing", "")
	if status != 404 {
		t.Fatalf("expected 404 for unknown route, got %d", status)
	}
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
