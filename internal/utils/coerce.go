package utils

import "strconv"

// CoerceFloat turns a raw JSON value into a non-negative float64. Missing,
// unparseable, or negative input becomes 0 rather than an error, matching
// the documented default for the numeric work fields.
func CoerceFloat(v any) float64 {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case float32:
		f = float64(value)
	case int:
		f = float64(value)
	case int64:
		f = float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}

// CoerceInt turns a raw JSON value into a non-negative int64 under the same
// policy as CoerceFloat. Fractional input is truncated.
func CoerceInt(v any) int64 {
	var n int64
	switch value := v.(type) {
	case float64:
		n = int64(value)
	case float32:
		n = int64(value)
	case int:
		n = int64(value)
	case int64:
		n = value
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		n = int64(parsed)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
