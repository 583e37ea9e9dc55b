package interp

import (
	"fmt"
	"math"
	"strconv"
)

// Stringify renders a runtime value the way print shows it
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	// integral values print without a fraction
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// truthy is false only for nil and false
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	// NaN is equal to itself, numbers compare as boxed values
	if an, ok := a.(float64); ok {
		if bn, ok := b.(float64); ok && math.IsNaN(an) && math.IsNaN(bn) {
			return true
		}
	}
	return a == b
}
