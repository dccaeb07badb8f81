package sanitize

// MaxPollutionScanDepth caps the recursive key scan. Levels nested deeper
// than this are not inspected; adversarially deep payloads are cut off by
// the transport body limit rather than by this predicate.
const MaxPollutionScanDepth = 10

// pollutedKeys are object keys that can overwrite shared base-object
// behavior when the config is later consumed by a JavaScript runtime.
var pollutedKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// HasPollution reports whether any object key within the first
// MaxPollutionScanDepth nesting levels of v matches the danger set.
// Primitives and nulls are never flagged. The predicate does not mutate
// or strip anything; rejecting the value is the caller's job.
func HasPollution(v interface{}) bool {
	return scanForPollution(v, 0)
}

func scanForPollution(v interface{}, depth int) bool {
	if depth > MaxPollutionScanDepth {
		return false
	}
	switch val := v.(type) {
	case map[string]interface{}:
		for key, child := range val {
			if _, bad := pollutedKeys[key]; bad {
				return true
			}
			if scanForPollution(child, depth+1) {
				return true
			}
		}
	case []interface{}:
		for _, item := range val {
			if scanForPollution(item, depth+1) {
				return true
			}
		}
	}
	return false
}
