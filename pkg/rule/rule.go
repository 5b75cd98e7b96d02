package rule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrRunAborted is reported to observers when Apply is interrupted by a panic.
var ErrRunAborted = errors.New("rule run aborted")

// Observer receives notifications about rule construction and evaluation.
// Implementations must not modify the rule they observe.
type Observer interface {
	CaseAppended(rule string, op Operator)
	CaseEvaluated(rule string, index int, matched bool)
	Applied(rule string, evaluated, matched int, elapsed time.Duration, err error)
}

// Option configures a Rule.
type Option func(*Rule)

// WithName labels the rule in logs and metrics.
func WithName(name string) Option {
	return func(r *Rule) { r.name = name }
}

// WithLogger sets the logger used for debug output. Rules are silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Rule) { r.logger = logger }
}

// WithObserver attaches an observer, typically telemetry metrics.
func WithObserver(o Observer) Option {
	return func(r *Rule) { r.observer = o }
}

// Rule is the caller-facing handle over one CaseList. Every builder call
// returns the same *Rule so clauses can be chained.
//
// A Rule is not safe for concurrent use; callers must serialize construction
// and Apply themselves.
type Rule struct {
	id       string
	name     string
	cases    CaseList
	logger   zerolog.Logger
	observer Observer
}

// New returns an empty rule.
func New(opts ...Option) *Rule {
	r := &Rule{
		id:     uuid.NewString(),
		name:   "default",
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With().Str("rule", r.name).Str("rule_id", r.id).Logger()
	return r
}

// ID returns the identifier generated for the rule.
func (r *Rule) ID() string { return r.id }

// Name returns the rule label.
func (r *Rule) Name() string { return r.name }

// Len returns the number of accumulated cases.
func (r *Rule) Len() int { return r.cases.Len() }

// If binds value for comparison. It does not modify the rule.
func (r *Rule) If(value any) *TargetEntry {
	return &TargetEntry{rule: r, value: value}
}

// Apply evaluates all accumulated cases in order, firing every match.
// It may be called repeatedly. Panics from predicates or actions propagate
// after aborting the remaining cases.
func (r *Rule) Apply() {
	_ = r.apply(false)
}

// TryApply behaves like Apply but recovers a panic from a predicate or an
// action and returns it as a *CaseError. Cases after the failing one are
// not evaluated.
func (r *Rule) TryApply() error {
	return r.apply(true)
}

func (r *Rule) add(op Operator, predicate Predicate, action Action) *Rule {
	r.cases.Append(predicate, action)
	r.logger.Debug().
		Str("operator", string(op)).
		Int("index", r.cases.Len()-1).
		Msg("Case appended")
	if r.observer != nil {
		r.observer.CaseAppended(r.name, op)
	}
	return r
}

// runState tracks the case under evaluation so failures can be attributed.
type runState struct {
	index     int
	stage     Stage
	evaluated int
	matched   int
	done      bool
}

func (r *Rule) apply(recoverPanics bool) (err error) {
	start := time.Now()
	st := runState{index: -1}
	r.logger.Debug().Int("cases", r.cases.Len()).Msg("Applying rule")

	defer func() {
		if recoverPanics {
			if v := recover(); v != nil {
				err = newCaseError(st.index, st.stage, v)
			}
		} else if !st.done {
			err = ErrRunAborted
		}
		r.finish(st, time.Since(start), err)
	}()

	r.cases.each(
		func(i int) {
			st.index = i
			st.stage = StagePredicate
		},
		func(i int, matched bool) {
			st.evaluated++
			if matched {
				st.matched++
				st.stage = StageAction
			}
			if r.observer != nil {
				r.observer.CaseEvaluated(r.name, i, matched)
			}
		},
	)
	st.done = true
	return nil
}

func (r *Rule) finish(st runState, elapsed time.Duration, err error) {
	if err != nil {
		r.logger.Warn().Err(err).Int("evaluated", st.evaluated).Msg("Rule run failed")
	} else {
		r.logger.Debug().
			Int("evaluated", st.evaluated).
			Int("matched", st.matched).
			Dur("duration", elapsed).
			Msg("Rule applied")
	}
	if r.observer != nil {
		r.observer.Applied(r.name, st.evaluated, st.matched, elapsed, err)
	}
}

// Stage locates a failure within a case.
type Stage string

const (
	StagePredicate Stage = "predicate"
	StageAction    Stage = "action"
)

// CaseError reports a panic recovered by TryApply.
type CaseError struct {
	Index int   // zero-based position of the failing case
	Stage Stage // predicate or action
	Value any   // recovered panic value
}

func newCaseError(index int, stage Stage, v any) *CaseError {
	return &CaseError{Index: index, Stage: stage, Value: v}
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("rule case %d: %s panicked: %v", e.Index, e.Stage, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *CaseError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
