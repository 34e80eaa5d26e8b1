package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Rules for loosely typed pipelines, where input and running value are both
// `any`. Each rule inspects the running value. A value counts as a number
// when it is a Go integer or float (NaN excluded), a json.Number, or a
// trimmed string in the usual decimal, exponent or 0x/0o/0b integer form.

// IsNumber fails when the running value is not a number.
func IsNumber() Rule[any, any] {
	return Rule[any, any]{
		Name:    "is_number",
		Message: "must be a number",
		Test: func(_ any, v any) bool {
			_, ok := toNumber(v)
			return ok
		},
	}
}

// ParseNumber fails when the running value is not a number and replaces it
// with its float64 form when it is.
func ParseNumber() Rule[any, any] {
	return Rule[any, any]{
		Name:    "parse_number",
		Message: "must be a number",
		Test: func(_ any, v any) bool {
			_, ok := toNumber(v)
			return ok
		},
		Transform: func(_ any, v any) any {
			n, _ := toNumber(v)
			return n
		},
	}
}

// GreaterThan fails unless the running value is a number above n.
func GreaterThan(n float64) Rule[any, any] {
	return Rule[any, any]{
		Name:    "greater_than",
		Message: fmt.Sprintf("must be greater than %v", n),
		Test: func(_ any, v any) bool {
			f, ok := toNumber(v)
			return ok && f > n
		},
	}
}

// LessThan fails unless the running value is a number below n.
func LessThan(n float64) Rule[any, any] {
	return Rule[any, any]{
		Name:    "less_than",
		Message: fmt.Sprintf("must be less than %v", n),
		Test: func(_ any, v any) bool {
			f, ok := toNumber(v)
			return ok && f < n
		},
	}
}

// ToFixed formats a numeric running value with exactly places decimals,
// e.g. 123 becomes "123.00". Non-numbers pass through untouched.
func ToFixed(places int) Rule[any, any] {
	if places < 0 {
		places = 0
	}
	return Rule[any, any]{
		Name: "to_fixed",
		Transform: func(_ any, v any) any {
			f, ok := toNumber(v)
			if !ok {
				return v
			}
			return strconv.FormatFloat(f, 'f', places, 64)
		},
	}
}

// LocalizedNumber formats a numeric running value with the separators of
// tag. Non-numbers pass through untouched.
func LocalizedNumber(tag language.Tag, places int) Rule[any, any] {
	return Rule[any, any]{
		Name: "localized_number",
		Transform: func(_ any, v any) any {
			f, ok := toNumber(v)
			if !ok {
				return v
			}
			return sanitizer.FormatNumber(tag, f, places)
		},
	}
}

// Prefix prepends p to the default text form of the running value.
func Prefix(p string) Rule[any, any] {
	return Rule[any, any]{
		Name: "prefix",
		Transform: func(_ any, v any) any {
			return p + fmt.Sprint(v)
		},
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseNumber accepts decimal and exponent forms, "Infinity" and unsigned
// integers with the 0x, 0o and 0b prefixes. Go-only literal syntax such as digit separators,
// hex floats and "inf" is rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 2 && unsigned[0] == '0' {
		base := 0
		switch unsigned[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if unsigned != s {
				return 0, false
			}
			return parseInteger(s[2:], base)
		}
	}

	if unsigned != "" && !isDigit(unsigned[0]) && unsigned[0] != '.' && unsigned != "Infinity" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func parseInteger(digits string, base int) (float64, bool) {
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
