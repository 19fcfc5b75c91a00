// Package extract reads typed values out of untyped map[string]any payloads,
// as produced by JSON decoding or database row scanning. Callers get a single
// error kind (ErrExtraction) for missing keys and wrong types.
package extract

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrExtraction is wrapped by every failure in this package.
var ErrExtraction = errors.New("map extraction failure")

// String returns the trimmed string at key. Missing key or non-string value
// fails with ErrExtraction.
func String(data map[string]any, key string) (string, error) {
	raw, err := lookup(data, key)
	if err != nil {
		return "", err
	}
	s, ok := raw.(string)
	if !ok {
		return "", wrongType(key, "string", raw)
	}
	return strings.TrimSpace(s), nil
}

// Bool returns the boolean at key. Accepts native bools plus the common
// textual and numeric encodings ("true"/"false", "1"/"0", 1/0).
func Bool(data map[string]any, key string) (bool, error) {
	raw, err := lookup(data, key)
	if err != nil {
		return false, err
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, wrongType(key, "bool", raw)
		}
		return b, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, wrongType(key, "bool", raw)
	}
}

// Int64 returns the integer at key. Accepts native integer types, integral
// float64 (JSON numbers), and decimal digit strings.
func Int64(data map[string]any, key string) (int64, error) {
	raw, err := lookup(data, key)
	if err != nil {
		return 0, err
	}
	n, ok := toInt64(raw)
	if !ok {
		return 0, wrongType(key, "integer", raw)
	}
	return n, nil
}

// ID returns the entity identifier at key as int64 or string: lossless
// integer coercion first, any other string passed through untouched for
// downstream UUID validation.
func ID(data map[string]any, key string) (any, error) {
	raw, err := lookup(data, key)
	if err != nil {
		return nil, err
	}
	if n, ok := toInt64(raw); ok {
		return n, nil
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s), nil
	}
	return nil, wrongType(key, "entity id", raw)
}

// StringOptional is String for keys that may be absent; absence returns nil.
func StringOptional(data map[string]any, key string) (*string, error) {
	if _, ok := data[key]; !ok {
		return nil, nil
	}
	s, err := String(data, key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Int64Optional is Int64 for keys that may be absent; absence returns nil.
func Int64Optional(data map[string]any, key string) (*int64, error) {
	if _, ok := data[key]; !ok {
		return nil, nil
	}
	n, err := Int64(data, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func lookup(data map[string]any, key string) (any, error) {
	raw, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing required key %q", ErrExtraction, key)
	}
	return raw, nil
}

func wrongType(key, want string, got any) error {
	return fmt.Errorf("%w: key %q: expected %s, got %T", ErrExtraction, key, want, got)
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if math.Trunc(v) != v || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
