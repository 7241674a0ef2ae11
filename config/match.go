package config

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// LooseEqual is the comparison used by IsOneOf.
//
// nil matches only nil. Two numbers, or a number and a numeric string, match
// when they are numerically equal, so 6, uint64(6), 6.0 and "6" are all the
// same value. Everything else matches by deep equality; strings are compared
// case-sensitively and booleans only match booleans.
func LooseEqual(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	leftNumber, leftOK := toNumber(left)
	rightNumber, rightOK := toNumber(right)

	if leftOK && rightOK {
		return leftNumber == rightNumber
	}

	return reflect.DeepEqual(left, right)
}

// isNumeric reports whether value is a number or a string holding a decimal number.
func isNumeric(value any) bool {
	_, ok := toNumber(value)

	return ok
}

func toNumber(value any) (float64, bool) {
	switch number := value.(type) {
	case int:
		return float64(number), true
	case int8:
		return float64(number), true
	case int16:
		return float64(number), true
	case int32:
		return float64(number), true
	case int64:
		return float64(number), true
	case uint:
		return float64(number), true
	case uint8:
		return float64(number), true
	case uint16:
		return float64(number), true
	case uint32:
		return float64(number), true
	case uint64:
		return float64(number), true
	case float32:
		return float64(number), true
	case float64:
		return number, true
	case string:
		return parseNumber(number)
	default:
		return 0, false
	}
}

// parseNumber accepts optionally signed decimal and exponent notation.
// Hex, underscores, NaN and infinities are rejected.
func parseNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.ContainsAny(trimmed, "xX_") {
		return 0, false
	}

	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}

	return number, true
}

// toInt converts integral numbers to int. Strings are not converted.
func toInt(value any) (int, bool) {
	if _, isString := value.(string); isString {
		return 0, false
	}

	number, ok := toNumber(value)
	if !ok || number != math.Trunc(number) || number >= math.MaxInt || number < math.MinInt {
		return 0, false
	}

	return int(number), true
}
