// Package api serves the metrics engine over HTTP as tabular JSON. It is a
// thin query surface: parameter validation, dispatch, serialization. Charting
// is the consumer's problem.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/metrics"
)

// Server exposes the metrics endpoints.
type Server struct {
	engine *metrics.Engine
	logger logging.Logger
}

// NewServer builds the API server over a metrics engine.
func NewServer(engine *metrics.Engine, logger logging.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics/average-monthly-spending", s.handle(s.averageMonthlySpending))
	mux.HandleFunc("GET /metrics/monthly-spending", s.handle(s.monthlySpending))
	mux.HandleFunc("GET /metrics/monthly-savings", s.handle(s.monthlySavings))
	mux.HandleFunc("GET /metrics/monthly-salary", s.handle(s.monthlySalary))
	mux.HandleFunc("GET /metrics/average-monthly-budget", s.handle(s.averageMonthlyBudget))
	mux.HandleFunc("GET /metrics/monthly-budget-history", s.handle(s.monthlyBudgetHistory))
	return s.logRequests(mux)
}

// queryParams carries the validated common query parameters.
type queryParams struct {
	period         metrics.Period
	includeWedding bool
}

type metricFunc func(ctx context.Context, params queryParams) (any, error)

// handle wraps a metric function with parameter parsing, error mapping and
// JSON serialization.
func (s *Server) handle(fn metricFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseParams(r)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}

		result, err := fn(r.Context(), params)
		if err != nil {
			var invalidPeriod *metrics.InvalidPeriodError
			if errors.As(err, &invalidPeriod) {
				s.writeError(w, http.StatusBadRequest, err)
				return
			}
			s.logger.WithError(err).Error("metric query failed")
			s.writeError(w, http.StatusInternalServerError, errors.New("internal error"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			s.logger.WithError(err).Error("failed to encode response")
		}
	}
}

func parseParams(r *http.Request) (queryParams, error) {
	params := queryParams{period: metrics.PeriodFullHistory, includeWedding: true}

	if raw := r.URL.Query().Get("period"); raw != "" {
		period, err := metrics.ParsePeriod(raw)
		if err != nil {
			return queryParams{}, err
		}
		params.period = period
	}

	if raw := r.URL.Query().Get("include_wedding"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return queryParams{}, errors.New("include_wedding must be a boolean")
		}
		params.includeWedding = include
	}
	return params, nil
}

func (s *Server) averageMonthlySpending(ctx context.Context, p queryParams) (any, error) {
	return s.engine.AverageMonthlySpendingByMetaCategory(ctx, p.period, p.includeWedding)
}

func (s *Server) monthlySpending(ctx context.Context, p queryParams) (any, error) {
	return s.engine.MonthlySpending(ctx, p.period, p.includeWedding)
}

func (s *Server) monthlySavings(ctx context.Context, p queryParams) (any, error) {
	return s.engine.MonthlySavings(ctx, p.period)
}

func (s *Server) monthlySalary(ctx context.Context, p queryParams) (any, error) {
	return s.engine.MonthlySalary(ctx, p.period)
}

func (s *Server) averageMonthlyBudget(ctx context.Context, p queryParams) (any, error) {
	return s.engine.AverageMonthlyBudget(ctx, p.period, p.includeWedding)
}

func (s *Server) monthlyBudgetHistory(ctx context.Context, p queryParams) (any, error) {
	return s.engine.MonthlyBudgetHistory(ctx, p.period, p.includeWedding)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		s.logger.WithError(encodeErr).Error("failed to encode error response")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
			logging.Field{Key: "duration", Value: time.Since(start).String()},
		)
	})
}
