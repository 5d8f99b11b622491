// Package analytics holds the pure derivation functions that turn ledger
// records into the metrics every view depends on. Every function is
// deterministic given its inputs and derives from scratch on each call; none
// of them cache state.
package analytics

import (
	"github.com/sentinelhq/sentinel/internal/model"
)

// NetWorth returns the signed sum of asset values: holdings add, liabilities
// subtract.
func NetWorth(assets []model.Asset) float64 {
	var total float64
	for _, a := range assets {
		if a.Kind == model.KindAsset {
			total += a.Value
		} else {
			total -= a.Value
		}
	}
	return total
}

// TotalExpense sums the amounts of expense-typed transactions. Income entries
// are excluded; no date filtering is applied, callers bring their own window.
func TotalExpense(txs []model.Transaction) float64 {
	var total float64
	for _, t := range txs {
		if t.Type == model.TransactionExpense {
			total += t.Amount
		}
	}
	return total
}

// TotalFixedCost sums all subscription amounts, independent of due day.
func TotalFixedCost(subs []model.Subscription) float64 {
	var total float64
	for _, s := range subs {
		total += s.Amount
	}
	return total
}

// CashFlow is the assumed monthly income minus fixed costs minus discretionary
// expense. The income figure is a configured external input, not derived from
// recorded income transactions.
func CashFlow(incomeAssumption, fixedCost, expense float64) float64 {
	return incomeAssumption - fixedCost - expense
}

// SpendByCategory maps category to summed expense amount. Only expense-typed
// transactions contribute, and keys keep the exact casing they were stored
// with so they round-trip against budget category keys. Categories with no
// expense transactions are absent, not zero.
func SpendByCategory(txs []model.Transaction) map[string]float64 {
	spend := make(map[string]float64)
	for _, t := range txs {
		if t.Type == model.TransactionExpense {
			spend[t.Category] += t.Amount
		}
	}
	return spend
}

// DayActivity is one calendar day's slice of the ledger, as the calendar view
// consumes it.
type DayActivity struct {
	Transactions []model.Transaction `json:"transactions"`
	HasIncome    bool                `json:"has_income"`
	ExpenseTotal float64             `json:"expense_total"`
}

// GroupByDay groups transactions by their exact date string. For each day it
// reports the subset of transactions, whether any of them is income, and the
// summed expense total.
func GroupByDay(txs []model.Transaction) map[string]DayActivity {
	days := make(map[string]DayActivity)
	for _, t := range txs {
		day := days[t.Date]
		day.Transactions = append(day.Transactions, t)
		if t.Type == model.TransactionIncome {
			day.HasIncome = true
		}
		if t.Type == model.TransactionExpense {
			day.ExpenseTotal += t.Amount
		}
		days[t.Date] = day
	}
	return days
}
