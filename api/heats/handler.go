package heats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kilianp07/derby/core/logger"
	"github.com/kilianp07/derby/core/ppn"
	"github.com/kilianp07/derby/infra/store"
)

// Scheduler produces and records a schedule for p.
type Scheduler interface {
	Schedule(ctx context.Context, p ppn.Params) (store.ScheduleRecord, error)
}

// Response is the body returned by GET /api/heats.
type Response struct {
	ID      string      `json:"id"`
	Lanes   int         `json:"lanes"`
	Cars    int         `json:"cars"`
	Rounds  int         `json:"rounds"`
	Heats   []ppn.Heat  `json:"heats"`
	Quality ppn.Quality `json:"quality"`
}

// NewHandler returns an HTTP handler generating schedules via
// GET /api/heats?lanes=&cars=&rounds=&balance=&avoid_competitor=&avoid_lane=.
// Omitted parameters other than cars take their value from defaults.
func NewHandler(s Scheduler, defaults ppn.Params, log logger.Logger) http.Handler {
	if log == nil {
		log = logger.NopLogger{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		p, err := parseParams(r, defaults)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec, err := s.Schedule(r.Context(), p)
		if err != nil {
			if errors.Is(err, ppn.ErrValidation) || errors.Is(err, ppn.ErrConfiguration) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Errorf("schedule %d lanes %d cars: %v", p.Lanes, p.Cars, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, Response{
			ID:      rec.ID,
			Lanes:   rec.Lanes,
			Cars:    rec.Cars,
			Rounds:  rec.Rounds,
			Heats:   rec.Heats,
			Quality: rec.Quality,
		})
	})
}

// NewHistoryHandler exposes stored schedules via
// GET /api/heats/history?race_id=&lanes=&start=&end=.
func NewHistoryHandler(st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := store.ScheduleQuery{RaceID: r.URL.Query().Get("race_id")}
		var err error
		if q.Start, err = parseTime(r.URL.Query().Get("start")); err != nil {
			http.Error(w, "start must be an RFC 3339 time", http.StatusBadRequest)
			return
		}
		if q.End, err = parseTime(r.URL.Query().Get("end")); err != nil {
			http.Error(w, "end must be an RFC 3339 time", http.StatusBadRequest)
			return
		}
		if s := r.URL.Query().Get("lanes"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				http.Error(w, "lanes must be an integer", http.StatusBadRequest)
				return
			}
			q.Lanes = n
		}
		records, err := st.Query(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []store.ScheduleRecord{}
		}
		writeJSON(w, records)
	})
}

// parseTime returns the zero time for an empty value.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseParams(r *http.Request, defaults ppn.Params) (ppn.Params, error) {
	q := r.URL.Query()
	p := defaults
	if q.Get("cars") == "" {
		return p, errors.New("cars is required")
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"lanes", &p.Lanes},
		{"cars", &p.Cars},
		{"rounds", &p.Rounds},
	}
	for _, f := range ints {
		s := q.Get(f.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, errors.New(f.name + " must be an integer")
		}
		*f.dst = n
	}
	weights := []struct {
		name string
		dst  *ppn.Weight
	}{
		{"balance", &p.Weights.Balance},
		{"avoid_competitor", &p.Weights.AvoidCompetitor},
		{"avoid_lane", &p.Weights.AvoidLane},
	}
	for _, f := range weights {
		s := q.Get(f.name)
		if s == "" {
			continue
		}
		v, err := ppn.ParseWeight(s)
		if err != nil {
			return p, errors.New(f.name + ": " + err.Error())
		}
		*f.dst = v
	}
	return p, nil
}
