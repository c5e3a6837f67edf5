package metrics

// Package metrics defines the events emitted when heat schedules are generated
// and the sink interfaces that record them. PromSink and InfluxSink in
// infra/metrics implement these interfaces and can be combined with
// NewMultiSink. NopSink is used when no sink is configured.
