package telemetry

import (
	"errors"
	"sort"
	"time"

	"github.com/TimurManjosov/rulechain/pkg/rule"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics records rule activity as prometheus collectors. It implements
// rule.Observer and is safe for concurrent use.
type Metrics struct {
	casesAppended  *prometheus.CounterVec
	casesEvaluated *prometheus.CounterVec
	casesMatched   *prometheus.CounterVec
	applies        *prometheus.CounterVec
	applyDur       *prometheus.HistogramVec
}

var _ rule.Observer = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		casesAppended: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_cases_appended_total",
				Help: "Cases appended to rules",
			},
			[]string{"rule", "operator"},
		),
		casesEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_cases_evaluated_total",
				Help: "Case predicates evaluated",
			},
			[]string{"rule"},
		),
		casesMatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_cases_matched_total",
				Help: "Case predicates that held and fired their action",
			},
			[]string{"rule"},
		),
		applies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rule_applies_total",
				Help: "Rule runs by outcome",
			},
			[]string{"rule", "outcome"},
		),
		applyDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rule_apply_duration_seconds",
				Help:    "Rule run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"rule"},
		),
	}

	for _, c := range []prometheus.Collector{m.casesAppended, m.casesEvaluated, m.casesMatched, m.applies, m.applyDur} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) CaseAppended(ruleName string, op rule.Operator) {
	m.casesAppended.WithLabelValues(ruleName, string(op)).Inc()
}

func (m *Metrics) CaseEvaluated(ruleName string, _ int, matched bool) {
	m.casesEvaluated.WithLabelValues(ruleName).Inc()
	if matched {
		m.casesMatched.WithLabelValues(ruleName).Inc()
	}
}

func (m *Metrics) Applied(ruleName string, _, _ int, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.applies.WithLabelValues(ruleName, outcome).Inc()
	m.applyDur.WithLabelValues(ruleName).Observe(elapsed.Seconds())
}

// Sample is one gathered metric family reduced to a single number: the sum
// of its counters, or the observation count for histograms.
type Sample struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Summarize gathers g and returns one Sample per family, sorted by name.
func Summarize(g prometheus.Gatherer) ([]Sample, error) {
	if g == nil {
		return nil, errors.New("nil gatherer")
	}
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(families))
	for _, mf := range families {
		var total float64
		for _, metric := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				total += metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				total += metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				total += float64(metric.GetHistogram().GetSampleCount())
			}
		}
		samples = append(samples, Sample{Name: mf.GetName(), Value: total})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}
