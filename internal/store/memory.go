package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sentinelhq/sentinel/internal/model"
)

// MemoryStore implements Store with in-memory storage. It is the only store
// implementation: the ledger is owned by a single session and persistence is
// an external collaborator's concern.
type MemoryStore struct {
	mu sync.RWMutex

	transactions  []model.Transaction
	assets        []model.Asset
	subscriptions []model.Subscription
	goals         []model.Goal

	// Budgets are a keyed collection; budgetOrder preserves creation order
	// for listing.
	budgets     map[string]float64
	budgetOrder []string
}

// NewMemoryStore creates an empty in-memory ledger store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		budgets: make(map[string]float64),
	}
}

// Transaction operations

// AddTransaction validates tx, assigns a fresh ID and prepends it so listings
// stay recency-ordered. Malformed input is a no-op.
func (m *MemoryStore) AddTransaction(tx model.Transaction) (model.Transaction, bool) {
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tx.ID = uuid.New().String()
	m.transactions = append([]model.Transaction{tx}, m.transactions...)
	return tx, true
}

func (m *MemoryStore) RemoveTransaction(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, tx := range m.transactions {
		if tx.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return
		}
	}
}

func (m *MemoryStore) ListTransactions() []model.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// Asset operations

func (m *MemoryStore) AddAsset(a model.Asset) (model.Asset, bool) {
	if err := a.Validate(); err != nil {
		return model.Asset{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = uuid.New().String()
	m.assets = append(m.assets, a)
	return a, true
}

func (m *MemoryStore) RemoveAsset(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.assets {
		if a.ID == id {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return
		}
	}
}

func (m *MemoryStore) ListAssets() []model.Asset {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Asset, len(m.assets))
	copy(out, m.assets)
	return out
}

// Subscription operations

func (m *MemoryStore) AddSubscription(s model.Subscription) (model.Subscription, bool) {
	if err := s.Validate(); err != nil {
		return model.Subscription{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = uuid.New().String()
	m.subscriptions = append(m.subscriptions, s)
	return s, true
}

func (m *MemoryStore) RemoveSubscription(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.subscriptions {
		if s.ID == id {
			m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
			return
		}
	}
}

func (m *MemoryStore) ListSubscriptions() []model.Subscription {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Subscription, len(m.subscriptions))
	copy(out, m.subscriptions)
	return out
}

// Budget operations

// SetBudget creates or replaces the budget for a category. Last write wins on
// the category key; a non-positive limit is a no-op.
func (m *MemoryStore) SetBudget(category string, limit float64) (model.Budget, bool) {
	b := model.Budget{Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return model.Budget{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.budgets[category]; !exists {
		m.budgetOrder = append(m.budgetOrder, category)
	}
	m.budgets[category] = limit
	return b, true
}

func (m *MemoryStore) RemoveBudget(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.budgets[category]; !exists {
		return
	}
	delete(m.budgets, category)
	for i, c := range m.budgetOrder {
		if c == category {
			m.budgetOrder = append(m.budgetOrder[:i], m.budgetOrder[i+1:]...)
			return
		}
	}
}

func (m *MemoryStore) ListBudgets() []model.Budget {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.listBudgetsLocked()
}

func (m *MemoryStore) listBudgetsLocked() []model.Budget {
	out := make([]model.Budget, 0, len(m.budgetOrder))
	for _, c := range m.budgetOrder {
		out = append(out, model.Budget{Category: c, Limit: m.budgets[c]})
	}
	return out
}

// Goal operations

func (m *MemoryStore) AddGoal(g model.Goal) (model.Goal, bool) {
	if err := g.Validate(); err != nil {
		return model.Goal{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	g.ID = uuid.New().String()
	m.goals = append(m.goals, g)
	return g, true
}

func (m *MemoryStore) RemoveGoal(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, g := range m.goals {
		if g.ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return
		}
	}
}

// ContributeToGoal adds amount to the goal's current balance. The amount must
// be positive; an unknown id or bad amount is a no-op.
func (m *MemoryStore) ContributeToGoal(id string, amount float64) (model.Goal, bool) {
	if !(amount > 0) {
		return model.Goal{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, g := range m.goals {
		if g.ID == id {
			m.goals[i].Current += amount
			return m.goals[i], true
		}
	}
	return model.Goal{}, false
}

func (m *MemoryStore) ListGoals() []model.Goal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Goal, len(m.goals))
	copy(out, m.goals)
	return out
}

// Snapshot copies all five collections under one read lock.
func (m *MemoryStore) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		Transactions:  make([]model.Transaction, len(m.transactions)),
		Assets:        make([]model.Asset, len(m.assets)),
		Subscriptions: make([]model.Subscription, len(m.subscriptions)),
		Goals:         make([]model.Goal, len(m.goals)),
		Budgets:       m.listBudgetsLocked(),
	}
	copy(snap.Transactions, m.transactions)
	copy(snap.Assets, m.assets)
	copy(snap.Subscriptions, m.subscriptions)
	copy(snap.Goals, m.goals)
	return snap
}
