package request

type ValidateWebhookRequest struct {
	URL string `json:"url"`
}

type ValidateTemplateRequest struct {
	Template string `json:"template"`
}

// SanitizeConfigRequest carries raw JSON text exactly as typed into the
// config editor, not a decoded object.
type SanitizeConfigRequest struct {
	Config string `json:"config"`
	// SyntaxOnly asks for the fast editor feedback check instead of the
	// full submit-time validation.
	SyntaxOnly bool `json:"syntax_only"`
}

type RenderConfigRequest struct {
	Value interface{} `json:"value"`
}

type ValidateActionRequest struct {
	ActionType string                 `json:"action_type"`
	Settings   map[string]interface{} `json:"settings"`
}
