package errmap

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	assetskema "github.com/reoring/assetskema"
)

// formatValue renders an input for a message: strings as they are, numbers
// without exponent, composites as JSON.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case gojson.Number:
		return t.String()
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t)
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case gojson.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

// scaled renders limit divided by unit, rounded to two decimals.
func scaled(limit float64, unit float64) string {
	return formatFloat(math.Round(limit/unit*100) / 100)
}

func limitValues(vals map[string]string, limit any) {
	vals["limit"] = formatValue(limit)
	if f, ok := toFloat(limit); ok {
		vals["limit_kb"] = scaled(f, 1024)
		vals["limit_mb"] = scaled(f, 1024*1024)
	}
}

func expectedValues(vals map[string]string, expected any) {
	switch t := expected.(type) {
	case []string:
		vals["expected"] = strings.Join(t, ", ")
		if len(t) > 0 {
			vals["expected_max"] = t[len(t)-1]
		}
	case []any:
		parts := make([]string, len(t))
		for i := range t {
			parts[i] = formatValue(t[i])
		}
		vals["expected"] = strings.Join(parts, ", ")
		if len(parts) > 0 {
			vals["expected_max"] = parts[len(parts)-1]
		}
	default:
		vals["expected"] = formatValue(t)
		vals["expected_max"] = vals["expected"]
	}
}

// countOf is the length of input when it is sized, otherwise the length
// recorded by the check, otherwise "unknown".
func countOf(input any, params map[string]any) string {
	if input != nil {
		rv := reflect.ValueOf(input)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return strconv.Itoa(rv.Len())
		case reflect.String:
			return strconv.Itoa(len([]rune(rv.String())))
		}
	}
	if n, ok := params[assetskema.ParamLen]; ok {
		return formatValue(n)
	}
	return "unknown"
}
