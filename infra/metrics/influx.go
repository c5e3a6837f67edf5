package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/derby/core/metrics"
	"github.com/kilianp07/derby/infra/logger"
)

// InfluxSink writes schedule events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.ScheduleRecorder {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSchedule writes one schedule_generated point.
func (s *InfluxSink) RecordSchedule(ev coremetrics.ScheduleEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_generated").
		AddTag("lanes", strconv.Itoa(ev.Lanes)).
		AddTag("component", "scheduler")
	if ev.RaceID != "" {
		p = p.AddTag("race_id", ev.RaceID)
	}
	p = p.AddField("cars", ev.Cars).
		AddField("rounds", ev.Rounds).
		AddField("heats", ev.Heats).
		AddField("balance", int(ev.Weights.Balance)).
		AddField("avoid_competitor", int(ev.Weights.AvoidCompetitor)).
		AddField("avoid_lane", int(ev.Weights.AvoidLane)).
		AddField("race_variance", round3(ev.Quality.RaceVariance)).
		AddField("competitor_repeats", ev.Quality.CompetitorRepeats).
		AddField("lane_repeats", ev.Quality.LaneRepeats).
		AddField("duration_ms", round3(ev.Duration.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordScheduleError writes a schedule_rejected point.
func (s *InfluxSink) RecordScheduleError(ev coremetrics.ScheduleErrorEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("schedule_rejected").
		AddTag("reason", ev.Reason).
		AddTag("component", "scheduler").
		AddField("lanes", ev.Lanes).
		AddField("cars", ev.Cars).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
