package httpapi

import (
	"io"
	"net/http"

	"github.com/sentinelhq/sentinel/internal/service"
)

// Declined mutations respond 200 with applied=false rather than an error
// status: rejected input is a no-op in the engine, not a failure.
type mutationResponse struct {
	Applied bool `json:"applied"`
	Record  any  `json:"record,omitempty"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Transactions())
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tx, ok := s.svc.CreateTransaction(req)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: tx})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.svc.DeleteTransaction(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Assets())
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, ok := s.svc.CreateAsset(req)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: a})
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	s.svc.DeleteAsset(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Subscriptions())
}

func (s *Server) handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSubscriptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sub, ok := s.svc.CreateSubscription(req)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: sub})
}

func (s *Server) handleDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	s.svc.DeleteSubscription(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

type setBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Budgets())
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, ok := s.svc.SetBudget(req.Category, req.Limit)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: b})
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	s.svc.DeleteBudget(r.PathValue("category"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoalReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Goals())
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, ok := s.svc.CreateGoal(req)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: g})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	s.svc.DeleteGoal(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

type contributeRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, ok := s.svc.Contribute(r.PathValue("id"), req.Amount)
	if !ok {
		writeJSON(w, http.StatusOK, mutationResponse{Applied: false})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: g})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Dashboard())
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Calendar())
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Forecast())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Snapshot())
}

func (s *Server) handleScanReceipt(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading image"})
		return
	}

	tx, err := s.svc.ScanReceipt(r.Context(), image)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{Applied: true, Record: tx})
}

type askRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": s.svc.Ask(req.Question)})
}
