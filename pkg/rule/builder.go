package rule

// TargetEntry holds a value waiting for the target it is compared against.
type TargetEntry struct {
	rule  *Rule
	value any
}

// Target binds the comparison target and decides, once, which operators are
// offered: *OrderedOps when value and target are both numbers, *EqualityOps
// otherwise. Comparisons run only when the rule is applied.
func (e *TargetEntry) Target(target any) Operators {
	value := e.value
	if SetFor(value, target) == SetOrdered {
		return &OrderedOps{
			rule: e.rule,
			cmp:  func() (int, bool) { return compareNumbers(value, target) },
		}
	}
	return &EqualityOps{
		rule:  e.rule,
		equal: func() bool { return strictEqual(value, target) },
	}
}

// Operators is the surface returned by Target. Then is always available;
// use Ordered to reach the numeric comparisons.
type Operators interface {
	// Then appends a case that fires when value equals target.
	Then(action Action) *Rule
	// Op appends a case for an operator chosen at run time.
	Op(op Operator, action Action) (*Rule, error)
	// Set reports which variant was offered.
	Set() OperatorSet
	// Ordered returns the numeric operator set when it was offered.
	Ordered() (*OrderedOps, bool)
}

// OrderedOps offers every comparison between two numbers.
type OrderedOps struct {
	rule *Rule
	cmp  func() (int, bool)
}

func (o *OrderedOps) append(op Operator, action Action) *Rule {
	accept := orderings[op]
	return o.rule.add(op, func() bool {
		c, ok := o.cmp()
		return ok && accept(c)
	}, action)
}

// Then fires action when value == target.
func (o *OrderedOps) Then(action Action) *Rule { return o.append(OpThen, action) }

// GreaterOrEqualThen fires action when value >= target.
func (o *OrderedOps) GreaterOrEqualThen(action Action) *Rule { return o.append(OpGte, action) }

// LessOrEqualThen fires action when value <= target.
func (o *OrderedOps) LessOrEqualThen(action Action) *Rule { return o.append(OpLte, action) }

// GreaterThen fires action when value > target.
func (o *OrderedOps) GreaterThen(action Action) *Rule { return o.append(OpGt, action) }

// LessThen fires action when value < target.
func (o *OrderedOps) LessThen(action Action) *Rule { return o.append(OpLt, action) }

// Op appends a case for any supported operator.
func (o *OrderedOps) Op(op Operator, action Action) (*Rule, error) {
	if err := ValidateOperator(SetOrdered, op); err != nil {
		return o.rule, err
	}
	return o.append(normalizeOperator(op), action), nil
}

func (o *OrderedOps) Set() OperatorSet { return SetOrdered }

func (o *OrderedOps) Ordered() (*OrderedOps, bool) { return o, true }

// EqualityOps offers equality only. It is returned for text and boolean
// values and for pairs of mismatched kinds.
type EqualityOps struct {
	rule  *Rule
	equal func() bool
}

// Then fires action when value and target have the same kind and are equal.
func (o *EqualityOps) Then(action Action) *Rule {
	return o.rule.add(OpThen, o.equal, action)
}

// Op accepts the equality operator and its aliases only.
func (o *EqualityOps) Op(op Operator, action Action) (*Rule, error) {
	if err := ValidateOperator(SetEquality, op); err != nil {
		return o.rule, err
	}
	return o.Then(action), nil
}

func (o *EqualityOps) Set() OperatorSet { return SetEquality }

func (o *EqualityOps) Ordered() (*OrderedOps, bool) { return nil, false }

// Number is satisfied by the Go numeric types, including named ones.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumberEntry is a statically typed TargetEntry for numbers.
type NumberEntry[N Number] struct {
	rule  *Rule
	value N
}

// IfNumber binds a number so Target returns the ordered operators without a
// type assertion.
func IfNumber[N Number](r *Rule, value N) NumberEntry[N] {
	return NumberEntry[N]{rule: r, value: value}
}

// Target binds the comparison target.
func (e NumberEntry[N]) Target(target N) *OrderedOps {
	value := e.value
	return &OrderedOps{
		rule: e.rule,
		cmp: func() (int, bool) {
			switch {
			case value < target:
				return -1, true
			case value > target:
				return 1, true
			case value == target:
				return 0, true
			default: // NaN
				return 0, false
			}
		},
	}
}

// ComparableEntry is a statically typed TargetEntry for text and booleans.
type ComparableEntry[T string | bool] struct {
	rule  *Rule
	value T
}

// IfText binds a string; only equality is offered.
func IfText(r *Rule, value string) ComparableEntry[string] {
	return ComparableEntry[string]{rule: r, value: value}
}

// IfBool binds a boolean; only equality is offered.
func IfBool(r *Rule, value bool) ComparableEntry[bool] {
	return ComparableEntry[bool]{rule: r, value: value}
}

// Target binds the comparison target.
func (e ComparableEntry[T]) Target(target T) *EqualityOps {
	value := e.value
	return &EqualityOps{
		rule:  e.rule,
		equal: func() bool { return value == target },
	}
}
