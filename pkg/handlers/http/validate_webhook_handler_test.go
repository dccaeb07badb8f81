package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

func newWebhookApp(t *testing.T, production bool) *fiber.App {
	t.Helper()
	logger := logrus.New()
	handler := NewValidateWebhookHandler(logger, sanitize.NewWebhookValidator(logger, production))

	app := fiber.New()
	app.Post("/api/v1/validation/webhook-url", handler.Handle)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestValidateWebhookHandler_Accepts(t *testing.T) {
	app := newWebhookApp(t, true)

	status, body := postJSON(t, app, "/api/v1/validation/webhook-url", map[string]interface{}{
		"url": "https://api.example.com/webhook?x=1",
	})

	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "https://api.example.com/webhook?x=1", body["url"])
}

func TestValidateWebhookHandler_RejectsPrivateHost(t *testing.T) {
	app := newWebhookApp(t, true)

	status, body := postJSON(t, app, "/api/v1/validation/webhook-url", map[string]interface{}{
		"url": "https://169.254.169.254/latest/meta-data",
	})

	assert.Equal(t, 422, status)
	assert.Equal(t, false, body["valid"])
}

func TestValidateWebhookHandler_RejectsHttpInProduction(t *testing.T) {
	app := newWebhookApp(t, true)

	status, _ := postJSON(t, app, "/api/v1/validation/webhook-url", map[string]interface{}{
		"url": "http://api.example.com/webhook",
	})
	assert.Equal(t, 422, status)

	devApp := newWebhookApp(t, false)
	status, _ = postJSON(t, devApp, "/api/v1/validation/webhook-url", map[string]interface{}{
		"url": "http://api.example.com/webhook",
	})
	assert.Equal(t, 200, status)
}

func TestValidateWebhookHandler_BadPayload(t *testing.T) {
	app := newWebhookApp(t, true)

	req := httptest.NewRequest("POST", "/api/v1/validation/webhook-url", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
}
