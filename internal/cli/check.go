package cli

import (
	"fmt"

	"github.com/TimurManjosov/rulechain/pkg/rule"
)

// CheckOptions controls how Check builds and runs its rule.
type CheckOptions struct {
	// Operators to append; empty means every operator the pair is offered.
	Operators []string
	// RecoverPanics runs the rule with TryApply.
	RecoverPanics bool
	// RuleOptions are passed to rule.New.
	RuleOptions []rule.Option
}

// Check compares value with target using each requested operator, applies
// the rule once, and reports which cases fired.
func Check(value, target any, opts CheckOptions) ([]CaseResult, error) {
	r := rule.New(opts.RuleOptions...)
	ops := r.If(value).Target(target)
	set := ops.Set()

	names := opts.Operators
	if len(names) == 0 {
		for _, op := range set.Operators() {
			names = append(names, string(op))
		}
	}

	results := make([]CaseResult, 0, len(names))
	for i, name := range names {
		op, err := rule.ParseOperator(name)
		if err != nil {
			return nil, err
		}
		results = append(results, CaseResult{
			Index:      i,
			Value:      fmt.Sprint(value),
			ValueKind:  rule.KindOf(value).String(),
			Operator:   string(op),
			Target:     fmt.Sprint(target),
			TargetKind: rule.KindOf(target).String(),
			Set:        set.String(),
		})
		idx := len(results) - 1
		if _, err := ops.Op(op, func() { results[idx].Fired = true }); err != nil {
			return nil, err
		}
	}

	if err := run(r, opts.RecoverPanics); err != nil {
		return results, err
	}
	return results, nil
}

// Demo runs the reference scenario: 10 > 5 fires A, then 10 == 10 fires B.
// It returns the fired labels in order.
func Demo(recoverPanics bool, ruleOpts ...rule.Option) ([]string, error) {
	var fired []string
	record := func(label string) rule.Action {
		return func() { fired = append(fired, label) }
	}

	r := rule.New(ruleOpts...)
	rule.IfNumber(r, 10).Target(5).GreaterThen(record("A"))
	r.If(10).Target(10).Then(record("B"))

	if err := run(r, recoverPanics); err != nil {
		return fired, err
	}
	return fired, nil
}

func run(r *rule.Rule, recoverPanics bool) error {
	if recoverPanics {
		return r.TryApply()
	}
	r.Apply()
	return nil
}
