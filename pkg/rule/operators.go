package rule

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"
)

// orderings is the set of supported operators, each mapped onto the
// three-way comparison results it accepts.
var orderings = map[Operator]func(c int) bool{
	OpThen: func(c int) bool { return c == 0 },
	OpGte:  func(c int) bool { return c >= 0 },
	OpLte:  func(c int) bool { return c <= 0 },
	OpGt:   func(c int) bool { return c > 0 },
	OpLt:   func(c int) bool { return c < 0 },
}

func normalizeOperator(op Operator) Operator {
	switch strings.ToLower(strings.TrimSpace(string(op))) {
	case "==", "eq", "equals", "then":
		return OpThen
	case ">=", "gte":
		return OpGte
	case "<=", "lte":
		return OpLte
	case ">", "gt":
		return OpGt
	case "<", "lt":
		return OpLt
	default:
		return op
	}
}

// strictEqual is equality for the equality-only set: values of different
// kinds are never equal.
func strictEqual(value, target any) bool {
	switch KindOf(value) {
	case KindNumber:
		c, ok := compareNumbers(value, target)
		return ok && c == 0
	case KindText:
		t, ok := target.(string)
		return ok && value.(string) == t
	case KindBool:
		t, ok := target.(bool)
		return ok && value.(bool) == t
	default:
		return false
	}
}

// compareNumbers returns -1, 0 or +1 and is exact for every pair of numeric
// kinds. NaN is unordered and reports false.
func compareNumbers(a, b any) (int, bool) {
	if x, ok := toInt64(a); ok {
		if y, ok := toInt64(b); ok {
			switch {
			case x < y:
				return -1, true
			case x > y:
				return 1, true
			default:
				return 0, true
			}
		}
	}

	x, ok := toBigFloat(a)
	if !ok {
		return 0, false
	}
	y, ok := toBigFloat(b)
	if !ok {
		return 0, false
	}
	return x.Cmp(y), true
}

func toInt64(v any) (int64, bool) {
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
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// toBigFloat converts any numeric kind without rounding. Integers and
// float64 values are represented exactly; json.Number is parsed with 256
// bits of mantissa.
func toBigFloat(v any) (*big.Float, bool) {
	if i, ok := toInt64(v); ok {
		return new(big.Float).SetInt64(i), true
	}
	switch n := v.(type) {
	case uint:
		return new(big.Float).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Float).SetUint64(n), true
	case float32:
		return floatToBig(float64(n))
	case float64:
		return floatToBig(n)
	case json.Number:
		return parseNumber(n)
	default:
		return nil, false
	}
}

func floatToBig(f float64) (*big.Float, bool) {
	if math.IsNaN(f) {
		return nil, false
	}
	return new(big.Float).SetFloat64(f), true
}

// parseNumber accepts decimal literals of any magnitude, including those
// beyond the float64 range.
func parseNumber(n json.Number) (*big.Float, bool) {
	f, _, err := big.ParseFloat(strings.TrimSpace(string(n)), 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	return f, true
}
