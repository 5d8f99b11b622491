package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/internal/model"
)

func validTransaction(merchant string, amount float64) model.Transaction {
	return model.Transaction{
		Date:     "2026-08-31",
		Merchant: merchant,
		Amount:   amount,
		Type:     model.TransactionExpense,
		Category: "Food",
	}
}

func TestAddTransactionAssignsIDAndPrepends(t *testing.T) {
	s := NewMemoryStore()

	first, ok := s.AddTransaction(validTransaction("Starbucks", 12.50))
	require.True(t, ok)
	assert.NotEmpty(t, first.ID)

	second, ok := s.AddTransaction(validTransaction("Shell Gas", 45.00))
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)

	// Most recent first.
	txs := s.ListTransactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "Shell Gas", txs[0].Merchant)
	assert.Equal(t, "Starbucks", txs[1].Merchant)
}

func TestAddTransactionRejectsMalformedInput(t *testing.T) {
	s := NewMemoryStore()

	tests := []struct {
		name string
		tx   model.Transaction
	}{
		{name: "empty merchant", tx: validTransaction("", 10)},
		{name: "negative amount", tx: validTransaction("X", -10)},
		{name: "NaN amount", tx: validTransaction("X", math.NaN())},
		{name: "bad type", tx: func() model.Transaction {
			tx := validTransaction("X", 10)
			tx.Type = "refund"
			return tx
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.AddTransaction(tt.tx)
			assert.False(t, ok)
		})
	}

	// Nothing was stored.
	assert.Empty(t, s.ListTransactions())
}

func TestRemoveTransactionUnknownIDIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	tx, ok := s.AddTransaction(validTransaction("Starbucks", 12.50))
	require.True(t, ok)

	s.RemoveTransaction("no-such-id")
	assert.Len(t, s.ListTransactions(), 1)

	s.RemoveTransaction(tx.ID)
	assert.Empty(t, s.ListTransactions())
}

func TestSetBudgetLastWriteWins(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.SetBudget("Food", 300)
	require.True(t, ok)
	_, ok = s.SetBudget("Transport", 250)
	require.True(t, ok)

	// Replacing a limit keeps one budget per category and its position.
	_, ok = s.SetBudget("Food", 450)
	require.True(t, ok)

	budgets := s.ListBudgets()
	require.Len(t, budgets, 2)
	assert.Equal(t, model.Budget{Category: "Food", Limit: 450}, budgets[0])
	assert.Equal(t, model.Budget{Category: "Transport", Limit: 250}, budgets[1])
}

func TestSetBudgetRejectsNonPositiveLimit(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.SetBudget("Food", 0)
	assert.False(t, ok)
	_, ok = s.SetBudget("Food", -10)
	assert.False(t, ok)
	_, ok = s.SetBudget("Food", math.NaN())
	assert.False(t, ok)
	assert.Empty(t, s.ListBudgets())
}

func TestRemoveBudgetUnknownCategoryIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.SetBudget("Food", 300)
	require.True(t, ok)

	s.RemoveBudget("Travel")
	assert.Len(t, s.ListBudgets(), 1)

	s.RemoveBudget("Food")
	assert.Empty(t, s.ListBudgets())
}

func TestContributeToGoal(t *testing.T) {
	s := NewMemoryStore()
	g, ok := s.AddGoal(model.Goal{Name: "Emergency Fund", Target: 10000, Current: 4500})
	require.True(t, ok)
	require.NotEmpty(t, g.ID)

	updated, ok := s.ContributeToGoal(g.ID, 500)
	require.True(t, ok)
	assert.Equal(t, 5000.0, updated.Current)

	// Must be positive.
	_, ok = s.ContributeToGoal(g.ID, 0)
	assert.False(t, ok)
	_, ok = s.ContributeToGoal(g.ID, -100)
	assert.False(t, ok)
	_, ok = s.ContributeToGoal(g.ID, math.NaN())
	assert.False(t, ok)

	// Unknown goal is a no-op.
	_, ok = s.ContributeToGoal("no-such-goal", 100)
	assert.False(t, ok)

	goals := s.ListGoals()
	require.Len(t, goals, 1)
	assert.Equal(t, 5000.0, goals[0].Current)
}

func TestContributionOrderDoesNotMatter(t *testing.T) {
	run := func(amounts []float64) float64 {
		s := NewMemoryStore()
		g, ok := s.AddGoal(model.Goal{Name: "Vault", Target: 10000})
		require.True(t, ok)
		for _, amt := range amounts {
			_, ok := s.ContributeToGoal(g.ID, amt)
			require.True(t, ok)
		}
		return s.ListGoals()[0].Current
	}

	assert.Equal(t, run([]float64{100, 500}), run([]float64{500, 100}))
}

func TestSnapshotIsIsolatedFromStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.AddTransaction(validTransaction("Starbucks", 12.50))
	require.True(t, ok)
	_, ok = s.AddAsset(model.Asset{Name: "Checking", Value: 4200, Kind: model.KindAsset})
	require.True(t, ok)
	_, ok = s.SetBudget("Food", 300)
	require.True(t, ok)

	snap := s.Snapshot()
	snap.Transactions[0].Merchant = "mutated"
	snap.Assets[0].Value = -1
	snap.Budgets[0].Limit = -1

	assert.Equal(t, "Starbucks", s.ListTransactions()[0].Merchant)
	assert.Equal(t, 4200.0, s.ListAssets()[0].Value)
	assert.Equal(t, 300.0, s.ListBudgets()[0].Limit)
}

func TestSubscriptionLifecycle(t *testing.T) {
	s := NewMemoryStore()

	sub, ok := s.AddSubscription(model.Subscription{Name: "Netflix", Amount: 15.99, DueDay: 15, Category: "Entertainment"})
	require.True(t, ok)
	require.NotEmpty(t, sub.ID)

	_, ok = s.AddSubscription(model.Subscription{Name: "Broken", Amount: 5, DueDay: 45})
	assert.False(t, ok)

	assert.Len(t, s.ListSubscriptions(), 1)
	s.RemoveSubscription(sub.ID)
	assert.Empty(t, s.ListSubscriptions())
}
