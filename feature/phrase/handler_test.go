package phrase

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"phrase-agent/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: server.ErrorHandler(zap.NewNop()),
	})
	feat, err := NewFeature(DefaultPhrases, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, feat.Load(app))
	app.Use(server.NotFoundHandler())
	return app
}

func TestHandlePhrase_Default(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/phrase", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Random)
	assert.Equal(t, DefaultPhrases[0], body.Phrase)
}

func TestHandlePhrase_Random(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/phrase?random=true", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Random)
	assert.Contains(t, DefaultPhrases, body.Phrase)
}

func TestHandlePhrase_RandomCaseSensitive(t *testing.T) {
	app := setupTestApp(t)

	// Only the exact value "true" enables random mode.
	for _, value := range []string{"TRUE", "True", "1", "yes", ""} {
		req := httptest.NewRequest("GET", "/phrase?random="+value, nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Random, "value %q must not enable random mode", value)
		assert.Equal(t, DefaultPhrases[0], body.Phrase)
	}
}

func TestHandlePhrase_RepeatedParamUsesFirst(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/phrase?random=true&random=false", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Random)
}

func TestHandlePhrase_Idempotent(t *testing.T) {
	app := setupTestApp(t)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("GET", "/phrase", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, DefaultPhrases[0], body.Phrase)
	}
}

func TestNotFoundFallback(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest("GET", "/unknown/path", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No route found matching /unknown/path", body["error"])
}
