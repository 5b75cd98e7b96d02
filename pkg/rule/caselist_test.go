package rule

import (
	"testing"

	"github.com/TimurManjosov/rulechain/internal/testutil"
)

func always(v bool) Predicate { return func() bool { return v } }

func TestCaseList_RunInInsertionOrder(t *testing.T) {
	rec := testutil.NewRecorder()
	var l CaseList
	l.Append(always(true), rec.Action("c1"))
	l.Append(always(false), rec.Action("c2"))
	l.Append(always(true), rec.Action("c3"))
	l.Append(always(true), rec.Action("c4"))

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}

	l.Run()
	testutil.AssertFired(t, rec, "c1", "c3", "c4")
}

func TestCaseList_EmptyRunIsNoop(t *testing.T) {
	var l CaseList
	l.Run()
	if l.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", l.Len())
	}
}

func TestCaseList_AppendDoesNotEvaluate(t *testing.T) {
	calls := 0
	var l CaseList
	l.Append(func() bool { calls++; return false }, func() {})
	if calls != 0 {
		t.Fatalf("predicate evaluated %d times during Append", calls)
	}
	l.Run()
	l.Run()
	if calls != 2 {
		t.Fatalf("predicate evaluated %d times over two runs, want 2", calls)
	}
}

func TestCaseList_ActionEffectsVisibleToLaterPredicates(t *testing.T) {
	rec := testutil.NewRecorder()
	armed := false
	var l CaseList
	l.Append(func() bool { return armed }, rec.Action("before"))
	l.Append(always(true), func() { armed = true })
	l.Append(func() bool { return armed }, rec.Action("after"))

	l.Run()
	testutil.AssertFired(t, rec, "after")

	rec.Reset()
	l.Run()
	testutil.AssertFired(t, rec, "before", "after")
}

func TestCaseList_AppendDuringRunIsVisited(t *testing.T) {
	rec := testutil.NewRecorder()
	var l CaseList
	l.Append(always(true), func() {
		l.Append(always(true), rec.Action("late"))
	})
	l.Append(always(true), rec.Action("early"))

	l.Run()
	testutil.AssertFired(t, rec, "early", "late")
}

func TestCaseList_PanicAbortsRun(t *testing.T) {
	rec := testutil.NewRecorder()
	var l CaseList
	l.Append(always(true), rec.Action("first"))
	l.Append(always(true), func() { panic("boom") })
	l.Append(always(true), rec.Action("never"))

	func() {
		defer func() {
			if v := recover(); v != "boom" {
				t.Fatalf("recovered %v, want boom", v)
			}
		}()
		l.Run()
	}()

	testutil.AssertFired(t, rec, "first")
}
