// Package httpapi exposes the finance service over JSON HTTP. It is the
// narrow contract between the engine and whatever presentation layer consumes
// it; no engine package depends on anything in here.
package httpapi

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/sentinelhq/sentinel/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "httpapi").Logger()

// Server routes HTTP requests to the finance service.
type Server struct {
	svc *service.FinanceService
	mux *http.ServeMux
}

func NewServer(svc *service.FinanceService) *Server {
	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	s.mux.HandleFunc("GET /v1/transactions", s.handleListTransactions)
	s.mux.HandleFunc("POST /v1/transactions", s.handleCreateTransaction)
	s.mux.HandleFunc("DELETE /v1/transactions/{id}", s.handleDeleteTransaction)

	s.mux.HandleFunc("GET /v1/assets", s.handleListAssets)
	s.mux.HandleFunc("POST /v1/assets", s.handleCreateAsset)
	s.mux.HandleFunc("DELETE /v1/assets/{id}", s.handleDeleteAsset)

	s.mux.HandleFunc("GET /v1/subscriptions", s.handleListSubscriptions)
	s.mux.HandleFunc("POST /v1/subscriptions", s.handleCreateSubscription)
	s.mux.HandleFunc("DELETE /v1/subscriptions/{id}", s.handleDeleteSubscription)

	s.mux.HandleFunc("GET /v1/budgets", s.handleBudgetReport)
	s.mux.HandleFunc("POST /v1/budgets", s.handleSetBudget)
	s.mux.HandleFunc("DELETE /v1/budgets/{category}", s.handleDeleteBudget)

	s.mux.HandleFunc("GET /v1/goals", s.handleGoalReport)
	s.mux.HandleFunc("POST /v1/goals", s.handleCreateGoal)
	s.mux.HandleFunc("DELETE /v1/goals/{id}", s.handleDeleteGoal)
	s.mux.HandleFunc("POST /v1/goals/{id}/contributions", s.handleContribute)

	s.mux.HandleFunc("GET /v1/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /v1/calendar", s.handleCalendar)
	s.mux.HandleFunc("GET /v1/forecast", s.handleForecast)
	s.mux.HandleFunc("GET /v1/snapshot", s.handleSnapshot)

	s.mux.HandleFunc("POST /v1/scan", s.handleScanReceipt)
	s.mux.HandleFunc("POST /v1/ask", s.handleAsk)
}

// Handler wraps the mux with CORS and request logging.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	return c.Handler(logRequests(s.mux))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("encoding response")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}
