package access

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Status is the message shown on the gate screen after a check.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var (
	StatusValidated = Status{Status: "success", Message: "Access key validated."}
	StatusInvalid   = Status{Status: "error", Message: "Invalid key."}
)

// Gate decides between the gate screen and the link grid.
type Gate struct {
	keys       *KeyStore
	secret     string
	cookieName string
}

func NewGate(keys *KeyStore, secret, cookieName string) *Gate {
	return &Gate{keys: keys, secret: secret, cookieName: cookieName}
}

// Validate checks a key against the store.
func (g *Gate) Validate(ctx context.Context, key string) (bool, error) {
	return g.keys.Exists(ctx, key)
}

// Check runs the page-load flow: a missing cookie shows the gate without a
// status, a cookie whose key no longer validates shows the gate with an error.
func (g *Gate) Check(c *fiber.Ctx) (bool, *Status) {
	raw := c.Cookies(g.cookieName)
	if raw == "" {
		return false, nil
	}
	if !g.cachedKeyValid(c, raw) {
		return false, &StatusInvalid
	}
	return true, nil
}

// Submit validates an entered key and caches it in the cookie on success.
func (g *Gate) Submit(c *fiber.Ctx, key string) (bool, Status) {
	key = strings.TrimSpace(key)
	ok, err := g.Validate(c.Context(), key)
	if err != nil {
		log.Printf("ERROR: validate access key: %v", err)
		return false, StatusInvalid
	}
	if !ok {
		return false, StatusInvalid
	}
	if err := g.remember(c, key); err != nil {
		log.Printf("ERROR: cache access key: %v", err)
		return false, StatusInvalid
	}
	return true, StatusValidated
}

func (g *Gate) cachedKeyValid(c *fiber.Ctx, raw string) bool {
	key, err := ParseToken(raw, g.secret)
	if err != nil {
		return false
	}
	ok, err := g.Validate(c.Context(), key)
	if err != nil {
		log.Printf("ERROR: validate cached access key: %v", err)
		return false
	}
	return ok
}

func (g *Gate) remember(c *fiber.Ctx, key string) error {
	token, err := IssueToken(key, g.secret)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     g.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(CookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
