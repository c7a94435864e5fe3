package logging

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetup_Level(t *testing.T) {
	prev, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		log.Logger = prevLogger
	})

	Setup("DEBUG")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup("")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestRequestLogger(t *testing.T) {
	buf := captureLog(t)

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/boom", func(c *fiber.Ctx) error { return assert.AnError })

	tests := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", 200, "info"},
		{"/missing", 404, "warn"},
		{"/teapot", 418, "warn"},
		{"/boom", 500, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			entry := lastLine(t, buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "request", entry["message"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}
