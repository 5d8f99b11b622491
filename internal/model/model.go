package model

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-day format every record date uses. There is no
// time-of-day component anywhere in the engine.
const DateLayout = "2006-01-02"

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// AssetKind distinguishes holdings from debts.
type AssetKind string

const (
	KindAsset     AssetKind = "asset"
	KindLiability AssetKind = "liability"
)

// Transaction is a single dated ledger entry. Transactions are never mutated
// after creation, only deleted.
type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   float64         `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
}

// Asset is a holding or a debt. Assets add to net worth, liabilities subtract.
type Asset struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Value float64   `json:"value"`
	Kind  AssetKind `json:"kind"`
}

// Subscription is a recurring bill with a due day of month. The due day is not
// validated against month length.
type Subscription struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	DueDay   int     `json:"due_day"`
	Category string  `json:"category"`
}

// Budget is a spending limit keyed by category name. The category string is
// both identifier and display label; at most one budget exists per category.
type Budget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// Goal is a savings target. Current only ever grows within the engine and may
// exceed Target.
type Goal struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// validAmount reports whether v is a usable monetary value. NaN, infinities
// and negative values must never be stored.
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func (t Transaction) Validate() error {
	if t.Merchant == "" {
		return fmt.Errorf("transaction merchant is empty")
	}
	if !validAmount(t.Amount) {
		return fmt.Errorf("invalid transaction amount: %v", t.Amount)
	}
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("invalid transaction date %q: %w", t.Date, err)
	}
	return nil
}

func (a Asset) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("asset name is empty")
	}
	if !validAmount(a.Value) {
		return fmt.Errorf("invalid asset value: %v", a.Value)
	}
	if a.Kind != KindAsset && a.Kind != KindLiability {
		return fmt.Errorf("invalid asset kind: %q", a.Kind)
	}
	return nil
}

func (s Subscription) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subscription name is empty")
	}
	if !validAmount(s.Amount) {
		return fmt.Errorf("invalid subscription amount: %v", s.Amount)
	}
	if s.DueDay < 1 || s.DueDay > 31 {
		return fmt.Errorf("subscription due day out of range: %d", s.DueDay)
	}
	return nil
}

func (b Budget) Validate() error {
	if b.Category == "" {
		return fmt.Errorf("budget category is empty")
	}
	// A zero or negative limit would make utilization undefined; it is
	// rejected here rather than guarded at read time.
	if math.IsNaN(b.Limit) || math.IsInf(b.Limit, 0) || b.Limit <= 0 {
		return fmt.Errorf("invalid budget limit: %v", b.Limit)
	}
	return nil
}

func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name is empty")
	}
	if math.IsNaN(g.Target) || math.IsInf(g.Target, 0) || g.Target <= 0 {
		return fmt.Errorf("invalid goal target: %v", g.Target)
	}
	if !validAmount(g.Current) {
		return fmt.Errorf("invalid goal current amount: %v", g.Current)
	}
	return nil
}
