// internal/platform/registry/helpers.go
package registry

// Type-safe extraction helpers for adapter factories reading values out of
// IntegrationConfig.Custom. They absorb the nil checks and type assertions
// that otherwise repeat in every adapter, including the float64 shape JSON
// numbers arrive in.

// GetStringConfig extracts a string value with a default fallback.
func GetStringConfig(custom map[string]any, key, defaultValue string) string {
	if custom == nil {
		return defaultValue
	}
	if val, ok := custom[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}

// GetBoolConfig extracts a bool value with a default fallback.
func GetBoolConfig(custom map[string]any, key string, defaultValue bool) bool {
	if custom == nil {
		return defaultValue
	}
	if val, ok := custom[key].(bool); ok {
		return val
	}
	return defaultValue
}

// GetIntConfig extracts an int value with a default fallback.
// Handles both int and float64 (JSON numbers are parsed as float64).
func GetIntConfig(custom map[string]any, key string, defaultValue int) int {
	if custom == nil {
		return defaultValue
	}
	if val, ok := custom[key].(int); ok {
		return val
	}
	if val, ok := custom[key].(float64); ok {
		return int(val)
	}
	return defaultValue
}

// GetStringSliceConfig extracts a []string with a default fallback,
// converting []any element by element when needed.
func GetStringSliceConfig(custom map[string]any, key string, defaultValue []string) []string {
	if custom == nil {
		return defaultValue
	}
	val, exists := custom[key]
	if !exists {
		return defaultValue
	}
	if slice, ok := val.([]string); ok {
		return slice
	}
	if anySlice, ok := val.([]any); ok {
		out := make([]string, 0, len(anySlice))
		for _, item := range anySlice {
			s, ok := item.(string)
			if !ok {
				return defaultValue
			}
			out = append(out, s)
		}
		return out
	}
	return defaultValue
}
