package rule

import "encoding/json"

// Action is the side effect fired when a case matches.
type Action func()

// Predicate is evaluated lazily each time a rule is applied.
type Predicate func() bool

// Kind classifies the scalar values a rule can compare.
type Kind int

const (
	KindUnsupported Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	default:
		return "unsupported"
	}
}

// KindOf reports the kind of v. Integers, floats and json.Number holding a
// valid numeric literal are numbers.
func KindOf(v any) Kind {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case json.Number:
		if _, ok := parseNumber(n); ok {
			return KindNumber
		}
		return KindUnsupported
	case string:
		return KindText
	case bool:
		return KindBool
	default:
		return KindUnsupported
	}
}

// Operator names a comparison between a value and its target.
type Operator string

const (
	OpThen Operator = "eq"
	OpGte  Operator = "gte"
	OpLte  Operator = "lte"
	OpGt   Operator = "gt"
	OpLt   Operator = "lt"
)

// OperatorSet is the capability surface offered after a value is bound to a target.
type OperatorSet int

const (
	// SetEquality offers Then only.
	SetEquality OperatorSet = iota
	// SetOrdered offers every comparison; both sides are numbers.
	SetOrdered
)

func (s OperatorSet) String() string {
	if s == SetOrdered {
		return "ordered"
	}
	return "equality"
}

// Operators lists the operators of the set in their canonical order.
func (s OperatorSet) Operators() []Operator {
	if s == SetOrdered {
		return []Operator{OpThen, OpGte, OpLte, OpGt, OpLt}
	}
	return []Operator{OpThen}
}

// Offers reports whether op is part of the set.
func (s OperatorSet) Offers(op Operator) bool {
	for _, o := range s.Operators() {
		if o == op {
			return true
		}
	}
	return false
}

// SetFor decides the operator surface for a value/target pair.
func SetFor(value, target any) OperatorSet {
	if KindOf(value) == KindNumber && KindOf(target) == KindNumber {
		return SetOrdered
	}
	return SetEquality
}
