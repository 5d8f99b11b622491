package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sentinelhq/sentinel/internal/assist"
	"github.com/sentinelhq/sentinel/internal/config"
	"github.com/sentinelhq/sentinel/internal/model"
	"github.com/sentinelhq/sentinel/internal/money"
	"github.com/sentinelhq/sentinel/internal/store"
)

// FinanceService owns the ledger store and exposes the mutation and
// derivation operations the presentation layer consumes. Record-creation
// payloads carry amounts as free-text numeric strings, exactly as the UI
// collects them; parsing failures make the operation a silent no-op.
type FinanceService struct {
	store   store.Store
	cfg     config.Config
	scanner assist.Scanner
	advisor assist.Advisor
}

func NewFinanceService(st store.Store, cfg config.Config, scanner assist.Scanner, advisor assist.Advisor) *FinanceService {
	return &FinanceService{
		store:   st,
		cfg:     cfg,
		scanner: scanner,
		advisor: advisor,
	}
}

// CreateTransactionRequest is a record-creation payload from the UI layer.
type CreateTransactionRequest struct {
	Merchant string `json:"merchant"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// CreateTransaction records a transaction. The date defaults to today, the
// type to expense and the category to Uncategorized when omitted.
func (s *FinanceService) CreateTransaction(req CreateTransactionRequest) (model.Transaction, bool) {
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return model.Transaction{}, false
	}

	tx := model.Transaction{
		Date:     req.Date,
		Merchant: req.Merchant,
		Amount:   amount,
		Type:     model.TransactionType(req.Type),
		Category: req.Category,
	}
	if tx.Date == "" {
		tx.Date = time.Now().Format(model.DateLayout)
	}
	if tx.Type == "" {
		tx.Type = model.TransactionExpense
	}
	if tx.Category == "" {
		tx.Category = "Uncategorized"
	}

	return s.store.AddTransaction(tx)
}

func (s *FinanceService) DeleteTransaction(id string) {
	s.store.RemoveTransaction(id)
}

func (s *FinanceService) Transactions() []model.Transaction {
	return s.store.ListTransactions()
}

// CreateAssetRequest is a record-creation payload for a holding or debt.
type CreateAssetRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

func (s *FinanceService) CreateAsset(req CreateAssetRequest) (model.Asset, bool) {
	value, err := money.ParseAmount(req.Value)
	if err != nil {
		return model.Asset{}, false
	}

	a := model.Asset{
		Name:  req.Name,
		Value: value,
		Kind:  model.AssetKind(req.Kind),
	}
	if a.Kind == "" {
		a.Kind = model.KindAsset
	}

	return s.store.AddAsset(a)
}

func (s *FinanceService) DeleteAsset(id string) {
	s.store.RemoveAsset(id)
}

func (s *FinanceService) Assets() []model.Asset {
	return s.store.ListAssets()
}

// CreateSubscriptionRequest is a record-creation payload for a recurring bill.
type CreateSubscriptionRequest struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	DueDay   int    `json:"due_day"`
	Category string `json:"category"`
}

func (s *FinanceService) CreateSubscription(req CreateSubscriptionRequest) (model.Subscription, bool) {
	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		return model.Subscription{}, false
	}

	sub := model.Subscription{
		Name:     req.Name,
		Amount:   amount,
		DueDay:   req.DueDay,
		Category: req.Category,
	}
	if sub.DueDay == 0 {
		sub.DueDay = 1
	}
	if sub.Category == "" {
		sub.Category = "General"
	}

	return s.store.AddSubscription(sub)
}

func (s *FinanceService) DeleteSubscription(id string) {
	s.store.RemoveSubscription(id)
}

func (s *FinanceService) Subscriptions() []model.Subscription {
	return s.store.ListSubscriptions()
}

// SetBudget creates or replaces the limit for a category. The limit arrives
// as free-text; non-numeric or non-positive limits are declined.
func (s *FinanceService) SetBudget(category, limit string) (model.Budget, bool) {
	v, err := money.ParseAmount(limit)
	if err != nil {
		return model.Budget{}, false
	}
	return s.store.SetBudget(category, v)
}

func (s *FinanceService) DeleteBudget(category string) {
	s.store.RemoveBudget(category)
}

// CreateGoalRequest is a record-creation payload for a savings goal.
type CreateGoalRequest struct {
	Name    string `json:"name"`
	Target  string `json:"target"`
	Current string `json:"current"`
}

func (s *FinanceService) CreateGoal(req CreateGoalRequest) (model.Goal, bool) {
	target, err := money.ParseAmount(req.Target)
	if err != nil {
		return model.Goal{}, false
	}
	current := 0.0
	if req.Current != "" {
		current, err = money.ParseAmount(req.Current)
		if err != nil {
			return model.Goal{}, false
		}
	}

	return s.store.AddGoal(model.Goal{
		Name:    req.Name,
		Target:  target,
		Current: current,
	})
}

func (s *FinanceService) DeleteGoal(id string) {
	s.store.RemoveGoal(id)
}

// Contribute adds a positive increment to a goal's current balance.
func (s *FinanceService) Contribute(goalID string, amount float64) (model.Goal, bool) {
	return s.store.ContributeToGoal(goalID, amount)
}

// ScanReceipt runs the pluggable scanner over the image and records its
// suggested transaction.
func (s *FinanceService) ScanReceipt(ctx context.Context, image []byte) (model.Transaction, error) {
	suggestion, err := s.scanner.Scan(ctx, image)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan receipt: %w", err)
	}

	tx, ok := s.store.AddTransaction(suggestion)
	if !ok {
		return model.Transaction{}, fmt.Errorf("scanner produced an invalid transaction")
	}
	return tx, nil
}

// Ask forwards a free-form question to the advisor with the current snapshot.
func (s *FinanceService) Ask(question string) string {
	return s.advisor.Reply(question, s.store.Snapshot())
}

// Snapshot exposes the current collections as read-only copies.
func (s *FinanceService) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}
