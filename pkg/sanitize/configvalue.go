package sanitize

import (
	"encoding/json"
	"fmt"
)

// invalidObjectPlaceholder is displayed when a stored value cannot be
// serialized, e.g. a structure with a reference cycle.
const invalidObjectPlaceholder = "[Invalid Object]"

// ConfigValue is the closed set of runtime shapes a stored action or
// condition config field can take once decoded. Classify arbitrary
// values with ConfigValueOf and render them with RenderConfigValue;
// there is no fall-through default for an unknown shape.
type ConfigValue interface {
	isConfigValue()
}

// NullValue represents an absent field.
type NullValue struct{}

// TextValue holds free text authored by a user.
type TextValue struct {
	Text string
}

// JSONValue holds an object or array decoded from config JSON.
type JSONValue struct {
	Value interface{}
}

// ScalarValue holds any remaining primitive, such as a bool or number.
type ScalarValue struct {
	Value interface{}
}

func (NullValue) isConfigValue()   {}
func (TextValue) isConfigValue()   {}
func (JSONValue) isConfigValue()   {}
func (ScalarValue) isConfigValue() {}

// ConfigValueOf classifies an arbitrary decoded value into the closed
// ConfigValue set.
func ConfigValueOf(v interface{}) ConfigValue {
	switch val := v.(type) {
	case nil:
		return NullValue{}
	case string:
		return TextValue{Text: val}
	case map[string]interface{}, []interface{}:
		return JSONValue{Value: val}
	default:
		return ScalarValue{Value: val}
	}
}

// RenderConfigValue produces a display string that is always safe to
// render as plain text, never as markup. Objects and arrays are
// pretty-printed and then markup-stripped so string fields embedded in
// the JSON cannot smuggle tags either.
func RenderConfigValue(v ConfigValue) string {
	switch val := v.(type) {
	case NullValue:
		return ""
	case TextValue:
		return StripMarkup(val.Text)
	case JSONValue:
		out, err := json.MarshalIndent(val.Value, "", "  ")
		if err != nil {
			return invalidObjectPlaceholder
		}
		return StripMarkup(string(out))
	case ScalarValue:
		return fmt.Sprintf("%v", val.Value)
	}
	return invalidObjectPlaceholder
}
