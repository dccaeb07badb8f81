package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

const TypeRest = "rest"

var allowedMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// RestSettings is the decoded shape of a rest action's settings map as
// submitted by the trigger form. Endpoint, Template and Payload are
// untrusted user input; each goes through its own validator.
type RestSettings struct {
	Endpoint string `mapstructure:"endpoint"`
	Method   string `mapstructure:"method"`
	Template string `mapstructure:"template"`
	Payload  string `mapstructure:"payload"`
}

// FieldError ties a rejection to the form field that caused it so the
// dashboard can show it inline.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Result aggregates the field-level outcomes for one action config.
// Endpoint is the accepted URL verbatim; Payload is the normalized JSON.
type Result struct {
	Valid       bool         `json:"valid"`
	Endpoint    string       `json:"endpoint,omitempty"`
	Payload     string       `json:"payload,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
}

// Validator screens a complete action config before it is persisted.
type Validator struct {
	logger  *logrus.Logger
	webhook *sanitize.WebhookValidator
	json    *sanitize.JSONSanitizer
}

func NewValidator(
	logger *logrus.Logger,
	webhook *sanitize.WebhookValidator,
	json *sanitize.JSONSanitizer,
) *Validator {
	return &Validator{
		logger:  logger,
		webhook: webhook,
		json:    json,
	}
}

// Validate decodes the settings map and screens each untrusted field.
// The field checks are independent pure functions, so they run
// concurrently without coordination. A non-nil error means the payload
// shape itself was unusable; field-level rejections come back in the
// Result instead.
func (v *Validator) Validate(ctx context.Context, actionType string, settings map[string]interface{}) (*Result, error) {
	if actionType != TypeRest {
		return nil, fmt.Errorf("unsupported action type: %s", actionType)
	}
	if settings == nil {
		return nil, fmt.Errorf("action settings are required")
	}

	var cfg RestSettings
	if err := mapstructure.Decode(settings, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode action settings: %w", err)
	}

	var (
		endpoint   string
		endpointOK bool
		tmpl       sanitize.TemplateValidation
		payload    string
		payloadOK  = true
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		endpoint, endpointOK = v.webhook.Sanitize(cfg.Endpoint)
		return nil
	})
	g.Go(func() error {
		tmpl = sanitize.ValidateTemplateVariables(cfg.Template)
		return nil
	})
	if cfg.Payload != "" {
		g.Go(func() error {
			payload, payloadOK = v.json.Sanitize(cfg.Payload)
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Valid: true}

	if !endpointOK {
		res.FieldErrors = append(res.FieldErrors, FieldError{
			Field:  "endpoint",
			Reason: "endpoint is not an acceptable webhook target",
		})
	} else {
		res.Endpoint = endpoint
	}

	if method := strings.ToUpper(cfg.Method); method != "" && !allowedMethods[method] {
		res.FieldErrors = append(res.FieldErrors, FieldError{
			Field:  "method",
			Reason: fmt.Sprintf("unsupported http method: %s", sanitize.StripMarkup(cfg.Method)),
		})
	}

	if !tmpl.IsValid {
		res.FieldErrors = append(res.FieldErrors, FieldError{
			Field:  "template",
			Reason: fmt.Sprintf("unknown template variables: %s", sanitize.StripMarkup(strings.Join(tmpl.InvalidVars, ", "))),
		})
	}

	if !payloadOK {
		res.FieldErrors = append(res.FieldErrors, FieldError{
			Field:  "payload",
			Reason: "payload must be valid json without reserved keys",
		})
	} else {
		res.Payload = payload
	}

	if len(res.FieldErrors) > 0 {
		res.Valid = false
		res.Endpoint = ""
		res.Payload = ""
		v.logger.WithField("field_errors", len(res.FieldErrors)).Warn("rejected action config")
	}

	return res, nil
}
