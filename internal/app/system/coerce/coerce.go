// Package coerce converts decoded JSON values the way the storefront's
// JavaScript client expects them to be read: truthiness, Number() and
// String() conversions.
//
// Values are those produced by encoding/json decoding into interface{}:
// nil, bool, float64, string, []any and map[string]any.
package coerce

import (
	"math"
	"strconv"
	"strings"
)

// Truthy reports whether v is truthy under JavaScript rules.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		// arrays and objects are always truthy
		return true
	}
}

// Number converts v like JavaScript's Number(). The result is NaN when v has
// no numeric reading.
func Number(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case float64:
		return x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		if f, ok := ParseNumber(s); ok {
			return f
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

// FiniteNumber returns Number(v) and whether it is finite.
func FiniteNumber(v any) (float64, bool) {
	f := Number(v)
	return f, !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseNumber parses a trimmed numeric literal. It accepts decimal and
// exponent forms, 0x/0o/0b integer prefixes and the Infinity spellings, and
// rejects Go-only forms such as "inf", "nan", hex floats and underscores.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil || strings.Contains(s, "_") {
				return 0, false
			}
			return float64(n), true
		}
	}

	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String converts scalar values like JavaScript's String(). It returns false
// for nil, arrays and objects.
func String(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return FormatNumber(x), true
	default:
		return "", false
	}
}

// FormatNumber renders f the way JavaScript prints numbers: integers without
// a fraction and exponent notation only for very large or small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		// Go pads the exponent to two digits; JavaScript does not.
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
