package rule

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ParseOperator and ValidateOperator.
var (
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrOperatorNotOffered = errors.New("operator not offered")
)

// ParseOperator maps a name or symbol such as "gt", ">" or "then" onto its
// canonical Operator.
func ParseOperator(name string) (Operator, error) {
	op := normalizeOperator(Operator(name))
	if _, ok := orderings[op]; !ok {
		return "", fmt.Errorf("%w: %q is not supported", ErrInvalidOperator, name)
	}
	return op, nil
}

// ValidateOperator checks that op may be used with an operator set of the
// given variant. It is a pure function.
func ValidateOperator(set OperatorSet, op Operator) error {
	normalized := normalizeOperator(op)
	if _, ok := orderings[normalized]; !ok {
		return fmt.Errorf("%w: %q is not supported", ErrInvalidOperator, op)
	}
	if !set.Offers(normalized) {
		return fmt.Errorf("%w: %q requires numeric value and target, set is %s", ErrOperatorNotOffered, op, set)
	}
	return nil
}
