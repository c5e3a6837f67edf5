package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/derby/api/heats"
	"github.com/kilianp07/derby/config"
	coremetrics "github.com/kilianp07/derby/core/metrics"
	"github.com/kilianp07/derby/core/model"
	"github.com/kilianp07/derby/core/ppn"
	"github.com/kilianp07/derby/core/race"
	"github.com/kilianp07/derby/infra/logger"
	"github.com/kilianp07/derby/infra/metrics"
	"github.com/kilianp07/derby/infra/mqtt"
	"github.com/kilianp07/derby/infra/store"
)

// Publisher announces stored schedules to other systems.
type Publisher interface {
	PublishSchedule(rec store.ScheduleRecord) error
	Disconnect()
}

// Request describes one schedule to generate. RaceID and Title are copied to
// the stored record.
type Request struct {
	ppn.Params
	RaceID string
	Title  string
}

// Service generates schedules and fans them out to metrics, the store and
// the MQTT publisher.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	sink  coremetrics.ScheduleRecorder
	store store.Store
	pub   Publisher
	now   func() time.Time
}

// Option overrides a dependency built from the configuration.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option { return func(s *Service) { s.log = l } }

// WithSink replaces the metrics sink.
func WithSink(sink coremetrics.ScheduleRecorder) Option { return func(s *Service) { s.sink = sink } }

// WithStore replaces the schedule store.
func WithStore(st store.Store) Option { return func(s *Service) { s.store = st } }

// WithPublisher replaces the MQTT publisher.
func WithPublisher(p Publisher) Option { return func(s *Service) { s.pub = p } }

// New creates a Service from the configuration. Dependencies not supplied
// through options are built from cfg.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	s := &Service{cfg: cfg, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = logger.New("service")
	}
	if s.sink == nil {
		sink, err := metrics.NewSink(cfg.Metrics, s.log)
		if err != nil {
			return nil, fmt.Errorf("metrics sink: %w", err)
		}
		s.sink = sink
	}
	if s.store == nil {
		st, err := store.New(cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("schedule store: %w", err)
		}
		s.store = st
	}
	if s.pub == nil && cfg.MQTT.Enabled() {
		pub, err := mqtt.NewPublisher(cfg.MQTT, logger.New("mqtt_publisher"))
		if err != nil {
			_ = s.store.Close()
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
		s.pub = pub
	}
	return s, nil
}

// Defaults returns the configured lane count, rounds and weights.
func (s *Service) Defaults() ppn.Params {
	return ppn.Params{
		Lanes:   s.cfg.Schedule.Lanes,
		Rounds:  s.cfg.Schedule.Rounds,
		Weights: s.cfg.Schedule.Weights,
	}
}

// Schedule generates the heats for req and records the result.
func (s *Service) Schedule(ctx context.Context, req Request) (store.ScheduleRecord, error) {
	if err := ctx.Err(); err != nil {
		return store.ScheduleRecord{}, err
	}
	start := time.Now()
	hs, err := ppn.Generate(req.Params, s.log)
	if err != nil {
		s.recordError(req.Params, err)
		return store.ScheduleRecord{}, err
	}
	rec := store.ScheduleRecord{
		RaceID:  req.RaceID,
		Title:   req.Title,
		Lanes:   ppn.EffectiveLanes(req.Lanes, req.Cars),
		Cars:    req.Cars,
		Rounds:  len(hs) / req.Cars,
		Weights: req.Weights,
		Heats:   hs,
	}
	return s.commit(ctx, rec, time.Since(start))
}

// PlanRace builds the heat sheet for r from the roster and records its
// schedule under the race identifier.
func (s *Service) PlanRace(ctx context.Context, r *model.Race, roster []model.Vehicle) (*race.Card, store.ScheduleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.ScheduleRecord{}, err
	}
	start := time.Now()
	card, err := race.Plan(r, roster, s.log)
	if err != nil {
		s.recordError(ppn.Params{Lanes: r.Lanes, Cars: len(r.VehicleIDs)}, err)
		return nil, store.ScheduleRecord{}, err
	}
	cars := len(card.Vehicles)
	rec := store.ScheduleRecord{
		RaceID:  card.RaceID,
		Title:   card.Title,
		Lanes:   card.Lanes,
		Cars:    cars,
		Rounds:  len(card.Schedule) / cars,
		Weights: r.Weights,
		Heats:   card.Schedule,
	}
	rec, err = s.commit(ctx, rec, time.Since(start))
	if err != nil {
		return nil, store.ScheduleRecord{}, err
	}
	return card, rec, nil
}

// commit evaluates rec, records metrics, persists and publishes it. Only a
// store failure is returned; metrics and publish failures are logged.
func (s *Service) commit(ctx context.Context, rec store.ScheduleRecord, elapsed time.Duration) (store.ScheduleRecord, error) {
	rec.ID = uuid.NewString()
	rec.Timestamp = s.now().UTC()
	rec.Quality = ppn.Evaluate(rec.Heats, rec.Cars)

	if err := s.sink.RecordSchedule(coremetrics.ScheduleEvent{
		RaceID:   rec.RaceID,
		Lanes:    rec.Lanes,
		Cars:     rec.Cars,
		Rounds:   rec.Rounds,
		Heats:    len(rec.Heats),
		Weights:  rec.Weights,
		Quality:  rec.Quality,
		Duration: elapsed,
		Time:     rec.Timestamp,
	}); err != nil {
		s.log.Warnf("record schedule metrics: %v", err)
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return store.ScheduleRecord{}, fmt.Errorf("store schedule: %w", err)
	}
	if s.pub != nil {
		if err := s.pub.PublishSchedule(rec); err != nil {
			s.log.Errorf("publish schedule %s: %v", rec.ID, err)
		}
	}
	s.log.Debugw("schedule generated", map[string]any{
		"id":       rec.ID,
		"race_id":  rec.RaceID,
		"lanes":    rec.Lanes,
		"cars":     rec.Cars,
		"heats":    len(rec.Heats),
		"variance": rec.Quality.RaceVariance,
		"elapsed":  elapsed.String(),
	})
	return rec, nil
}

func (s *Service) recordError(p ppn.Params, err error) {
	rec, ok := s.sink.(coremetrics.ScheduleErrorRecorder)
	if !ok {
		return
	}
	reason := "internal"
	switch {
	case errors.Is(err, ppn.ErrValidation):
		reason = "validation"
	case errors.Is(err, ppn.ErrConfiguration):
		reason = "configuration"
	case errors.Is(err, race.ErrTooFewVehicles):
		reason = "roster"
	}
	if rerr := rec.RecordScheduleError(coremetrics.ScheduleErrorEvent{
		Lanes:  p.Lanes,
		Cars:   p.Cars,
		Reason: reason,
		Time:   s.now().UTC(),
	}); rerr != nil {
		s.log.Warnf("record schedule error: %v", rerr)
	}
}

// History returns stored schedules matching q.
func (s *Service) History(ctx context.Context, q store.ScheduleQuery) ([]store.ScheduleRecord, error) {
	return s.store.Query(ctx, q)
}

// Handler returns the API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/heats", heats.NewHandler(apiScheduler{s}, s.Defaults(), s.log))
	mux.Handle("/api/heats/history", heats.NewHistoryHandler(s.store))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Run serves the API, and /metrics when Prometheus is enabled, until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr()); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	srv := &http.Server{Addr: s.cfg.HTTP.Addr(), Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("serving heat schedules on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Disconnect()
	}
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return s.store.Close()
}

type apiScheduler struct{ s *Service }

func (a apiScheduler) Schedule(ctx context.Context, p ppn.Params) (store.ScheduleRecord, error) {
	return a.s.Schedule(ctx, Request{Params: p})
}
