package metrics

import (
	coremetrics "github.com/kilianp07/derby/core/metrics"
	"github.com/kilianp07/derby/infra/logger"
)

// NewSink builds the sink described by cfg. It returns a NopSink when no
// backend is enabled and a MultiSink when more than one is.
func NewSink(cfg coremetrics.Config, log logger.Logger) (coremetrics.ScheduleRecorder, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	var sinks []coremetrics.ScheduleRecorder
	if cfg.PrometheusEnabled {
		s, err := NewPromSink()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
		log.Infof("prometheus sink enabled")
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
		log.Infof("influx sink enabled for %s", cfg.InfluxURL)
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return coremetrics.NewMultiSink(sinks...), nil
	}
}
