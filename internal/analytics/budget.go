package analytics

import (
	"github.com/sentinelhq/sentinel/internal/model"
)

// BudgetStatus reports one category's spend against its configured limit.
// Utilization is the raw ratio in percent and may exceed 100; UtilizationPct
// is clamped for display.
type BudgetStatus struct {
	Category       string  `json:"category"`
	Limit          float64 `json:"limit"`
	Spent          float64 `json:"spent"`
	Utilization    float64 `json:"utilization"`
	UtilizationPct float64 `json:"utilization_pct"`
	Over           bool    `json:"over"`
	Remaining      float64 `json:"remaining"`
	OverBy         float64 `json:"over_by"`
}

// BudgetReport maps each configured budget against the category spend derived
// from txs. Budgets reference transaction categories softly: a budget with no
// matching transactions reports zero spend. Budgets without a positive limit
// are skipped; the store rejects those at creation, this is the read-side
// guard against a divide-by-zero ever reaching display.
func BudgetReport(budgets []model.Budget, txs []model.Transaction) []BudgetStatus {
	spend := SpendByCategory(txs)

	report := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		if b.Limit <= 0 {
			continue
		}
		spent := spend[b.Category]
		st := BudgetStatus{
			Category:    b.Category,
			Limit:       b.Limit,
			Spent:       spent,
			Utilization: spent / b.Limit * 100,
		}
		st.UtilizationPct = st.Utilization
		if st.UtilizationPct > 100 {
			st.UtilizationPct = 100
		}
		if spent > b.Limit {
			st.Over = true
			st.OverBy = spent - b.Limit
		} else {
			st.Remaining = b.Limit - spent
		}
		report = append(report, st)
	}
	return report
}

// GoalStatus reports a savings goal's progress. Ratio is unclamped so callers
// can detect an exceeded goal; Pct is clamped at 100 for display.
type GoalStatus struct {
	Goal     model.Goal `json:"goal"`
	Ratio    float64    `json:"ratio"`
	Pct      float64    `json:"pct"`
	Exceeded bool       `json:"exceeded"`
}

// GoalProgress derives progress for a single goal. A non-positive target
// reports zero progress rather than an undefined ratio; the store rejects
// such goals at creation.
func GoalProgress(g model.Goal) GoalStatus {
	st := GoalStatus{Goal: g}
	if g.Target <= 0 {
		return st
	}
	st.Ratio = g.Current / g.Target * 100
	st.Pct = st.Ratio
	if st.Pct > 100 {
		st.Pct = 100
	}
	st.Exceeded = g.Current > g.Target
	return st
}
