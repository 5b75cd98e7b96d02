package testutil

import (
	"reflect"
	"testing"
)

// Recorder collects action labels in the order the actions fire.
type Recorder struct {
	fired []string
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Action returns a callable that records label each time it is invoked.
func (r *Recorder) Action(label string) func() {
	return func() {
		r.fired = append(r.fired, label)
	}
}

// Fired returns a copy of the labels recorded so far.
func (r *Recorder) Fired() []string {
	out := make([]string, len(r.fired))
	copy(out, r.fired)
	return out
}

// Count returns how many times label was recorded.
func (r *Recorder) Count(label string) int {
	n := 0
	for _, l := range r.fired {
		if l == label {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.fired = nil
}

// AssertFired fails the test unless exactly want fired, in that order.
func AssertFired(t *testing.T, r *Recorder, want ...string) {
	t.Helper()
	got := r.Fired()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fired = %v, want %v", got, want)
	}
}
