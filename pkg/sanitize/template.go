package sanitize

import (
	"strings"
)

// allowedTemplateVars are the variables a trigger author may reference in
// a message template. The set is process-wide, fixed at compile time and
// not user extensible.
var allowedTemplateVars = map[string]struct{}{
	"eventType":       {},
	"agentId":         {},
	"chainId":         {},
	"registry":        {},
	"blockNumber":     {},
	"transactionHash": {},
	"timestamp":       {},
	"reputationScore": {},
	"triggerId":       {},
	"triggerName":     {},
}

// TemplateValidation partitions the {{variable}} references found in a
// message template. Invalid names are returned verbatim so the form can
// point at the exact offender.
type TemplateValidation struct {
	IsValid     bool     `json:"is_valid"`
	InvalidVars []string `json:"invalid_vars"`
}

// ValidateTemplateVariables extracts every {{ name }} reference in a
// single left-to-right pass, trims whitespace inside the braces and
// checks each name against the allow-list. A reference ends at the first
// closing braces, so nesting is not a thing. Templates with no
// references are trivially valid. The template is never evaluated or
// rendered here; substitution happens elsewhere and must treat values as
// data.
func ValidateTemplateVariables(template string) TemplateValidation {
	invalid := []string{}
	i := 0
	for i+1 < len(template) {
		open := strings.Index(template[i:], "{{")
		if open < 0 {
			break
		}
		open += i
		end := strings.Index(template[open+2:], "}}")
		if end < 0 {
			break
		}
		name := strings.TrimSpace(template[open+2 : open+2+end])
		if _, ok := allowedTemplateVars[name]; !ok {
			invalid = append(invalid, name)
		}
		i = open + 2 + end + 2
	}
	return TemplateValidation{
		IsValid:     len(invalid) == 0,
		InvalidVars: invalid,
	}
}
