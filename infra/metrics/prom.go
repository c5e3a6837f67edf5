package metrics

import (
	"errors"
	"strconv"

	coremetrics "github.com/kilianp07/derby/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records schedule events in Prometheus metrics.
type PromSink struct {
	schedules *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	variance  *prometheus.GaugeVec
	failures  *prometheus.CounterVec
}

// NewPromSink registers schedule metrics on the default Prometheus registerer.
// The /metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	schedules := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heat_schedules_total",
		Help: "Total number of generated heat schedules",
	}, []string{"lanes"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "heat_schedule_duration_seconds",
		Help:    "Time spent building and reordering a heat schedule",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
	}, []string{"lanes"})
	variance := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "heat_schedule_race_count_variance",
		Help: "Variance of races per competitor in the last generated schedule",
	}, []string{"lanes"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "heat_schedule_errors_total",
		Help: "Total number of rejected schedule requests",
	}, []string{"reason"})

	var err error
	if schedules, err = register(reg, schedules); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if variance, err = register(reg, variance); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	return &PromSink{schedules: schedules, duration: duration, variance: variance, failures: failures}, nil
}

// register returns the already registered collector when c was registered
// by an earlier sink.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSchedule updates the counters for one generated schedule.
func (s *PromSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	lanes := strconv.Itoa(ev.Lanes)
	s.schedules.WithLabelValues(lanes).Inc()
	s.duration.WithLabelValues(lanes).Observe(ev.Duration.Seconds())
	s.variance.WithLabelValues(lanes).Set(ev.Quality.RaceVariance)
	return nil
}

// RecordScheduleError counts a rejected request.
func (s *PromSink) RecordScheduleError(ev coremetrics.ScheduleErrorEvent) error {
	reason := ev.Reason
	if reason == "" {
		reason = "unknown"
	}
	s.failures.WithLabelValues(reason).Inc()
	return nil
}
