// Package rule implements a small embedded rule language.
//
// A Rule accumulates cases of the form "if value compared to target then
// action" through a chained API and fires them with Apply:
//
//	r := rule.New()
//	ops, _ := r.If(score).Target(50).Ordered()
//	ops.GreaterOrEqualThen(pass)
//	r.If(plan).Target("premium").Then(unlock)
//	r.Apply()
//
// Target decides once which operators are offered. When value and target
// are both numbers the ordered set (Then, GreaterOrEqualThen,
// LessOrEqualThen, GreaterThen, LessThen) is returned; for text, booleans
// and mismatched kinds only Then is available. IfNumber, IfText and IfBool
// give the same surfaces with static types.
//
// Predicates are deferred: nothing is compared until Apply runs. Apply
// visits cases in the order they were added and fires every match, not just
// the first. Apply may be called any number of times, interleaved with
// further construction.
//
// Failures are fail-fast. A panic in a predicate or action stops the run
// and propagates from Apply; TryApply recovers it into a *CaseError instead.
//
// Rules are not safe for concurrent use.
package rule
