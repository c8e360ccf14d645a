// Package server provides the HTTP API of the dashboard. The server
// holds the immutable snapshot and computes every response from it on
// demand; there is no per-session state.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shopdash/shopdash/lib/common/date"
	"github.com/shopdash/shopdash/lib/dataset"
	"github.com/shopdash/shopdash/lib/filter"
	"github.com/shopdash/shopdash/lib/reports/metrics"
	"github.com/shopdash/shopdash/lib/reports/summary"
	"github.com/shopdash/shopdash/web"
)

// Server serves the dashboard API.
type Server struct {
	db  *dataset.Snapshot
	log *slog.Logger
}

// New creates a server over the given snapshot.
func New(db *dataset.Snapshot, log *slog.Logger) *Server {
	return &Server{db: db, log: log}
}

// Router builds the HTTP handler, including the embedded dashboard
// page.
func (s *Server) Router() (http.Handler, error) {
	assets, err := web.Files()
	if err != nil {
		return nil, err
	}
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Get("/api/meta", s.handleMeta)
	r.Get("/api/metrics", s.handleMetrics)
	r.Get("/api/summary/{report}", s.handleSummary)
	r.Handle("/*", assets)
	return r, nil
}

type meta struct {
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Categories   []string `json:"categories"`
	PaymentTypes []string `json:"payment_types"`
}

func (s *Server) handleMeta(w http.ResponseWriter, req *http.Request) {
	span := s.db.Period()
	writeJSON(w, meta{
		Start:        span.Start.Format("2006-01-02"),
		End:          span.End.Format("2006-01-02"),
		Categories:   s.db.Categories(),
		PaymentTypes: s.db.PaymentTypes(),
	})
}

type metricsResponse struct {
	metrics.Metrics
	Warnings []string `json:"warnings,omitempty"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, req *http.Request) {
	view := s.parseSpec(req.URL.Query()).Apply(s.db)
	writeJSON(w, metricsResponse{
		Metrics:  metrics.Compute(view, s.db.Sellers),
		Warnings: view.Warnings,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, req *http.Request) {
	view := s.parseSpec(req.URL.Query()).Apply(s.db)
	var res *summary.Summary
	switch chi.URLParam(req, "report") {
	case "status":
		res = summary.StatusDistribution(view.Orders)
	case "categories":
		res = summary.TopCategories(view.Products)
	case "payments":
		res = summary.PaymentTypeDistribution(view.Payments)
	case "sellers_by_state":
		res = summary.SellersByState(s.db.Sellers)
	case "sellers_by_city":
		res = summary.SellersByCity(s.db.Sellers).Top(summary.TopN)
	case "orders_per_day":
		res = summary.OrdersPerInterval(view.Orders, parseInterval(req.URL.Query()))
	default:
		http.Error(w, "unknown report", http.StatusNotFound)
		return
	}
	writeJSON(w, res)
}

// parseSpec reads the filter parameters. Malformed dates are treated
// as unset and fall back to the dataset's full span; user input never
// produces a fatal error here.
func (s *Server) parseSpec(query url.Values) filter.Spec {
	spec := filter.Spec{
		Period: date.Period{
			Start: parseDate(query, "from"),
			End:   parseDate(query, "to"),
		},
		Category:    query.Get("category"),
		PaymentType: query.Get("payment"),
	}
	return spec.Normalize(s.db.Period())
}

func parseDate(query url.Values, key string) time.Time {
	value := query.Get(key)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

var intervals = map[string]date.Interval{
	"daily":     date.Daily,
	"weekly":    date.Weekly,
	"monthly":   date.Monthly,
	"quarterly": date.Quarterly,
	"yearly":    date.Yearly,
}

func parseInterval(query url.Values) date.Interval {
	if interval, ok := intervals[query.Get("interval")]; ok {
		return interval
	}
	return date.Daily
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}
