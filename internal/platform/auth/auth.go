package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// localsUserID is the fiber.Ctx locals key holding the authenticated user id.
const localsUserID = "user_id"

type Middleware struct {
	jwtSecret   []byte
	ingestToken string
}

func NewMiddleware(jwtSecret, ingestToken string) *Middleware {
	return &Middleware{
		jwtSecret:   []byte(jwtSecret),
		ingestToken: ingestToken,
	}
}

// RequireUser verifies the bearer JWT and stores its subject as the user id.
// Without a configured secret every request is rejected.
func (m *Middleware) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok || len(m.jwtSecret) == 0 {
			return unauthorized(c)
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid || claims.Subject == "" {
			return unauthorized(c)
		}

		c.Locals(localsUserID, claims.Subject)
		return c.Next()
	}
}

// RequireIngestToken guards the internal click endpoints. An empty token
// disables the check.
func (m *Middleware) RequireIngestToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.ingestToken == "" {
			return c.Next()
		}
		got := c.Get("X-Ingest-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.ingestToken)) != 1 {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// UserID returns the id stored by RequireUser, or "" when absent.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)
	return id
}

// SetUserID is used by tests and trusted internal callers.
func SetUserID(c *fiber.Ctx, id string) {
	c.Locals(localsUserID, id)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
