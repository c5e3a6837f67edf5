package metrics

import (
	"time"

	"github.com/kilianp07/derby/core/ppn"
)

// ScheduleEvent describes one generated heat schedule.
type ScheduleEvent struct {
	RaceID   string
	Lanes    int
	Cars     int
	Rounds   int
	Heats    int
	Weights  ppn.Weights
	Quality  ppn.Quality
	Duration time.Duration
	Time     time.Time
}

// ScheduleRecorder records generated schedules for observability purposes.
type ScheduleRecorder interface {
	RecordSchedule(ev ScheduleEvent) error
}

// ScheduleErrorEvent captures a rejected schedule request.
type ScheduleErrorEvent struct {
	Lanes  int
	Cars   int
	Reason string
	Time   time.Time
}

// ScheduleErrorRecorder records rejected schedule requests.
type ScheduleErrorRecorder interface {
	RecordScheduleError(ev ScheduleErrorEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordSchedule(ScheduleEvent) error           { return nil }
func (NopSink) RecordScheduleError(ScheduleErrorEvent) error { return nil }

// MultiSink fans events out to several sinks.
type MultiSink struct {
	Sinks []ScheduleRecorder
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...ScheduleRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSchedule forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordSchedule(ev ScheduleEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSchedule(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordScheduleError forwards the event to sinks implementing ScheduleErrorRecorder.
func (m *MultiSink) RecordScheduleError(ev ScheduleErrorEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ScheduleErrorRecorder); ok {
			if err := rec.RecordScheduleError(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
