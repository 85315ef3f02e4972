package dsl

import (
	"math"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// toInt converts a decoded input to int64. Integer kinds and integral JSON
// numbers are always accepted; lax mode also accepts integral floats and
// numeric strings. Booleans are never numbers.
func toInt(v any, strict bool) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt(n)
	case gojson.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, true
		}
		if strict {
			return 0, false
		}
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return floatToInt(f)
		}
	case float32:
		if !strict {
			return floatToInt(float64(n))
		}
	case float64:
		if !strict {
			return floatToInt(n)
		}
	case string:
		if strict {
			return 0, false
		}
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

// toFloat converts a decoded input to a finite float64. Lax mode also accepts
// numeric strings.
func toFloat(v any, strict bool) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case gojson.Number:
		p, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		if strict {
			return 0, false
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		i, ok := toInt(v, true)
		if !ok {
			return 0, false
		}
		f = float64(i)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numericValue reports the value of a JSON number or Go numeric kind without
// any string coercion.
func numericValue(v any) (float64, bool) {
	if _, isString := v.(string); isString {
		return 0, false
	}
	return toFloat(v, true)
}

func uintToInt(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// formatNumber renders a float without exponent or trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
