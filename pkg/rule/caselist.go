package rule

// Case pairs a deferred condition with the action fired when it holds.
type Case struct {
	Predicate Predicate
	Action    Action
}

// CaseList is an ordered, append-only sequence of cases.
// It is not safe for concurrent use.
type CaseList struct {
	cases []Case
}

// Append adds a case at the tail. Neither argument is validated.
func (l *CaseList) Append(predicate Predicate, action Action) {
	l.cases = append(l.cases, Case{Predicate: predicate, Action: action})
}

// Len returns the number of cases appended so far.
func (l *CaseList) Len() int {
	return len(l.cases)
}

// Run evaluates every case in insertion order and fires each action whose
// predicate holds. A panic in a predicate or action aborts the run.
func (l *CaseList) Run() {
	l.each(nil, nil)
}

// each walks the list by index, so cases appended by an action are reached
// within the same run. before is called ahead of the predicate, after once
// the predicate has returned and before the action fires. Either may be nil.
func (l *CaseList) each(before func(index int), after func(index int, matched bool)) {
	for i := 0; i < len(l.cases); i++ {
		c := l.cases[i]
		if before != nil {
			before(i)
		}
		matched := c.Predicate()
		if after != nil {
			after(i, matched)
		}
		if matched {
			c.Action()
		}
	}
}
