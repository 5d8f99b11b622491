package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelhq/sentinel/internal/model"
)

func expense(merchant string, amount float64, category string) model.Transaction {
	return model.Transaction{
		Date:     "2026-08-31",
		Merchant: merchant,
		Amount:   amount,
		Type:     model.TransactionExpense,
		Category: category,
	}
}

func income(merchant string, amount float64) model.Transaction {
	return model.Transaction{
		Date:     "2026-08-31",
		Merchant: merchant,
		Amount:   amount,
		Type:     model.TransactionIncome,
		Category: "Income",
	}
}

func TestNetWorthSignedSum(t *testing.T) {
	assets := []model.Asset{
		{Name: "Checking Account", Value: 4200, Kind: model.KindAsset},
		{Name: "Vanguard 401k", Value: 52000, Kind: model.KindAsset},
		{Name: "Amex Gold", Value: 450, Kind: model.KindLiability},
	}

	assert.Equal(t, 55750.0, NetWorth(assets))
}

func TestNetWorthAddAndSubtract(t *testing.T) {
	assets := []model.Asset{{Name: "Checking", Value: 1000, Kind: model.KindAsset}}
	base := NetWorth(assets)

	withAsset := append(assets, model.Asset{Name: "Savings", Value: 250, Kind: model.KindAsset})
	assert.Equal(t, base+250, NetWorth(withAsset))

	withLiability := append(assets, model.Asset{Name: "Card", Value: 250, Kind: model.KindLiability})
	assert.Equal(t, base-250, NetWorth(withLiability))
}

func TestTotalExpenseExcludesIncome(t *testing.T) {
	txs := []model.Transaction{
		expense("Starbucks", 12.50, "Food"),
		expense("Shell Gas", 45.00, "Transport"),
		income("Payroll", 4500.00),
	}

	assert.Equal(t, 57.50, TotalExpense(txs))
}

func TestTotalExpenseOrderInvariant(t *testing.T) {
	txs := []model.Transaction{
		expense("A", 10, "Food"),
		expense("B", 20, "Transport"),
		income("C", 100),
		expense("D", 30, "Food"),
	}
	reversed := []model.Transaction{txs[3], txs[2], txs[1], txs[0]}

	assert.Equal(t, TotalExpense(txs), TotalExpense(reversed))
}

func TestTotalFixedCost(t *testing.T) {
	subs := []model.Subscription{
		{Name: "Netflix", Amount: 15.99, DueDay: 15},
		{Name: "Spotify", Amount: 11.99, DueDay: 20},
		{Name: "Gym", Amount: 45.00, DueDay: 5},
		{Name: "Rent", Amount: 1800.00, DueDay: 1},
	}

	assert.InDelta(t, 1872.98, TotalFixedCost(subs), 1e-9)
	assert.Zero(t, TotalFixedCost(nil))
}

func TestCashFlow(t *testing.T) {
	assert.Equal(t, 5000.0-1872.98-57.50, CashFlow(5000, 1872.98, 57.50))
}

func TestSpendByCategorySumsToTotalExpense(t *testing.T) {
	txs := []model.Transaction{
		expense("Starbucks", 12.50, "Food"),
		expense("Chipotle", 22.00, "Food"),
		expense("Shell Gas", 45.00, "Transport"),
		income("Payroll", 4500.00),
	}

	spend := SpendByCategory(txs)
	require.Len(t, spend, 2)
	assert.Equal(t, 34.50, spend["Food"])
	assert.Equal(t, 45.00, spend["Transport"])

	var sum float64
	for _, v := range spend {
		sum += v
	}
	assert.Equal(t, TotalExpense(txs), sum)

	// Income-only categories are absent, not zero.
	_, present := spend["Income"]
	assert.False(t, present)
}

func TestSpendByCategoryPreservesKeyCasing(t *testing.T) {
	txs := []model.Transaction{
		expense("A", 10, "Food"),
		expense("B", 5, "food"),
	}

	spend := SpendByCategory(txs)
	assert.Equal(t, 10.0, spend["Food"])
	assert.Equal(t, 5.0, spend["food"])
}

func TestGroupByDay(t *testing.T) {
	txs := []model.Transaction{
		expense("Starbucks", 12.50, "Food"),
		expense("Shell Gas", 45.00, "Transport"),
		income("Payroll", 4500.00),
		{Date: "2026-08-29", Merchant: "Netflix", Amount: 15.99, Type: model.TransactionExpense, Category: "Entertainment"},
	}

	days := GroupByDay(txs)
	require.Len(t, days, 2)

	today := days["2026-08-31"]
	assert.Len(t, today.Transactions, 3)
	assert.True(t, today.HasIncome)
	assert.Equal(t, 57.50, today.ExpenseTotal)

	earlier := days["2026-08-29"]
	assert.Len(t, earlier.Transactions, 1)
	assert.False(t, earlier.HasIncome)
	assert.InDelta(t, 15.99, earlier.ExpenseTotal, 1e-9)

	_, present := days["2026-08-30"]
	assert.False(t, present)
}

func TestGroupByDayIsRederivedFromInput(t *testing.T) {
	txs := []model.Transaction{expense("Starbucks", 12.50, "Food")}

	first := GroupByDay(txs)
	second := GroupByDay(txs)
	assert.Equal(t, first, second)

	// Dropping the transaction drops the day; no stale state survives.
	assert.Empty(t, GroupByDay(nil))
}
