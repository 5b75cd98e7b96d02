package testutil

import "testing"

func TestRecorder_OrderAndCount(t *testing.T) {
	rec := NewRecorder()
	a := rec.Action("a")
	b := rec.Action("b")

	a()
	b()
	a()

	AssertFired(t, rec, "a", "b", "a")
	if rec.Count("a") != 2 {
		t.Fatalf("Count(a) = %d, want 2", rec.Count("a"))
	}
	if rec.Count("missing") != 0 {
		t.Fatalf("Count(missing) = %d, want 0", rec.Count("missing"))
	}
}

func TestRecorder_FiredIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Action("x")()

	got := rec.Fired()
	got[0] = "mutated"

	AssertFired(t, rec, "x")
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder()
	rec.Action("x")()
	rec.Reset()

	AssertFired(t, rec)
}
