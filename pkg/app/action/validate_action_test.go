package action_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgentPulse/TriggerDeck/pkg/app/action"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

func newValidator(production bool) *action.Validator {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return action.NewValidator(
		logger,
		sanitize.NewWebhookValidator(logger, production),
		sanitize.NewJSONSanitizer(logger),
	)
}

func TestValidator_Validate_Accepts(t *testing.T) {
	v := newValidator(true)

	res, err := v.Validate(context.Background(), action.TypeRest, map[string]interface{}{
		"endpoint": "https://api.example.com/webhook",
		"method":   "POST",
		"template": "Event: {{eventType}} at block {{blockNumber}}",
		"payload":  `{ "retries": 3 }`,
	})
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Empty(t, res.FieldErrors)
	assert.Equal(t, "https://api.example.com/webhook", res.Endpoint)
	assert.Equal(t, `{"retries":3}`, res.Payload)
}

func TestValidator_Validate_OptionalFields(t *testing.T) {
	v := newValidator(true)

	res, err := v.Validate(context.Background(), action.TypeRest, map[string]interface{}{
		"endpoint": "https://api.example.com/webhook",
	})
	require.NoError(t, err)

	assert.True(t, res.Valid)
	assert.Empty(t, res.Payload)
}

func TestValidator_Validate_FieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		field    string
	}{
		{
			name: "private endpoint",
			settings: map[string]interface{}{
				"endpoint": "https://192.168.1.1/hook",
			},
			field: "endpoint",
		},
		{
			name: "missing endpoint",
			settings: map[string]interface{}{
				"template": "{{eventType}}",
			},
			field: "endpoint",
		},
		{
			name: "bad method",
			settings: map[string]interface{}{
				"endpoint": "https://api.example.com/webhook",
				"method":   "TRACE",
			},
			field: "method",
		},
		{
			name: "unknown template variable",
			settings: map[string]interface{}{
				"endpoint": "https://api.example.com/webhook",
				"template": "{{malicious}}",
			},
			field: "template",
		},
		{
			name: "polluted payload",
			settings: map[string]interface{}{
				"endpoint": "https://api.example.com/webhook",
				"payload":  `{"__proto__":{"admin":true}}`,
			},
			field: "payload",
		},
	}

	v := newValidator(true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate(context.Background(), action.TypeRest, tt.settings)
			require.NoError(t, err)

			assert.False(t, res.Valid)
			assert.Empty(t, res.Endpoint)
			assert.Empty(t, res.Payload)
			require.NotEmpty(t, res.FieldErrors)
			found := false
			for _, fe := range res.FieldErrors {
				if fe.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a field error for %q, got %v", tt.field, res.FieldErrors)
		})
	}
}

func TestValidator_Validate_ShapeErrors(t *testing.T) {
	v := newValidator(false)

	_, err := v.Validate(context.Background(), "email", map[string]interface{}{})
	assert.Error(t, err)

	_, err = v.Validate(context.Background(), action.TypeRest, nil)
	assert.Error(t, err)
}
