package numeric

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

var hundred = decimal.NewFromInt(100)

// SafeParse converts heterogeneous upstream values into a decimal. Rate
// configuration and edited amounts arrive as floats, strings or nothing at
// all; anything that is not a finite number yields the fallback instead of
// an error.
func SafeParse(value any, fallback decimal.Decimal) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return fallback
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return fallback
		}
		return *v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return decimal.NewFromFloat(v)
	case float32:
		return SafeParse(float64(v), fallback)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return SafeParse(string(v), fallback)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// NormalizePercent lets configuration express a commission as either a
// fraction (0.10) or a percentage (10): values above 1 are divided by 100.
func NormalizePercent(v decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(one) {
		return v.Div(hundred)
	}
	return v
}

// Clamp01 bounds v to the [0, 1] interval.
func Clamp01(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(one) {
		return one
	}
	return v
}
