package store

import (
	"github.com/sentinelhq/sentinel/internal/model"
)

// Store defines the ledger operations the service layer depends on. All
// operations are synchronous; mutators that accept user input return the
// applied record and ok=false instead of an error when the input is malformed,
// because rejected input is a silent no-op, not a failure.
type Store interface {
	// Transaction operations
	AddTransaction(tx model.Transaction) (model.Transaction, bool)
	RemoveTransaction(id string)
	ListTransactions() []model.Transaction

	// Asset operations
	AddAsset(a model.Asset) (model.Asset, bool)
	RemoveAsset(id string)
	ListAssets() []model.Asset

	// Subscription operations
	AddSubscription(s model.Subscription) (model.Subscription, bool)
	RemoveSubscription(id string)
	ListSubscriptions() []model.Subscription

	// Budget operations. SetBudget is create-or-replace on the category key.
	SetBudget(category string, limit float64) (model.Budget, bool)
	RemoveBudget(category string)
	ListBudgets() []model.Budget

	// Goal operations
	AddGoal(g model.Goal) (model.Goal, bool)
	RemoveGoal(id string)
	ContributeToGoal(id string, amount float64) (model.Goal, bool)
	ListGoals() []model.Goal

	// Snapshot returns copies of all five collections taken under a single
	// lock, so derived views never observe a partially applied mutation.
	Snapshot() Snapshot
}

// Snapshot is a read-only copy of the ledger's contents.
type Snapshot struct {
	Transactions  []model.Transaction  `json:"transactions"`
	Assets        []model.Asset        `json:"assets"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	Budgets       []model.Budget       `json:"budgets"`
	Goals         []model.Goal         `json:"goals"`
}
