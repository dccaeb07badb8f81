package sanitize

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

// Rejection reasons used for diagnostics and abuse counters.
const (
	ReasonSyntaxInvalid  = "syntax_invalid"
	ReasonPolicyRejected = "policy_rejected"
)

// JSONSanitizer validates and normalizes raw JSON config text submitted
// through the trigger and action forms.
type JSONSanitizer struct {
	logger *logrus.Logger
}

func NewJSONSanitizer(logger *logrus.Logger) *JSONSanitizer {
	return &JSONSanitizer{
		logger: logger,
	}
}

// Sanitize parses input as strict JSON, rejects values carrying prototype
// pollution keys and returns the value re-serialized without insignificant
// whitespace. Object key order is not preserved; normalization is not
// canonicalization. Rejections return ok == false, never an error.
func (s *JSONSanitizer) Sanitize(input string) (string, bool) {
	if strings.TrimSpace(input) == "" {
		s.logger.Warn("rejected blank json config")
		return "", false
	}

	dec := json.NewDecoder(strings.NewReader(input))
	// Keep numeric literals verbatim so a sanitized document round-trips
	// to itself.
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		s.logger.WithError(err).WithField("reason", ReasonSyntaxInvalid).Warn("rejected malformed json config")
		return "", false
	}
	if dec.More() {
		s.logger.WithField("reason", ReasonSyntaxInvalid).Warn("rejected json config with trailing content")
		return "", false
	}

	if HasPollution(v) {
		s.logger.WithField("reason", ReasonPolicyRejected).Warn("rejected json config with prototype pollution key")
		return "", false
	}

	out, err := json.Marshal(v)
	if err != nil {
		s.logger.WithError(err).Warn("failed to reserialize json config")
		return "", false
	}
	return string(out), true
}

// IsValidJSON reports whether input is syntactically valid JSON. It is the
// fast path for keystroke-time editor feedback and performs no pollution
// scan; anything crossing a trust boundary must go through Sanitize.
func IsValidJSON(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	return fastjson.Validate(input) == nil
}
