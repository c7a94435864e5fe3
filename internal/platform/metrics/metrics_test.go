package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/analytics/urls/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(Requests.WithLabelValues("GET", "/analytics/urls/:id", "404"))

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/analytics/urls/"+id, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	after := testutil.ToFloat64(Requests.WithLabelValues("GET", "/analytics/urls/:id", "404"))
	assert.Equal(t, 2.0, after-before)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "http_requests_total"))
}

func TestRecordClickIngest(t *testing.T) {
	before := testutil.ToFloat64(ClickIngests.WithLabelValues("duplicate"))
	RecordClickIngest("duplicate", 3)
	RecordClickIngest("duplicate", 0)
	assert.Equal(t, 3.0, testutil.ToFloat64(ClickIngests.WithLabelValues("duplicate"))-before)
}

func TestObserveAggregation(t *testing.T) {
	ObserveAggregation("dashboard", time.Now(), nil)
	ObserveAggregation("dashboard", time.Now(), errors.New("boom"))
	assert.Equal(t, 2, testutil.CollectAndCount(Aggregations))
}
