package service

import (
	"fmt"

	"github.com/sentinelhq/sentinel/internal/analytics"
	"github.com/sentinelhq/sentinel/internal/money"
)

// DashboardReport carries the headline metrics plus their rendered strings.
// The display fields honor privacy mode; the numeric fields never do.
type DashboardReport struct {
	NetWorth     float64 `json:"net_worth"`
	TotalExpense float64 `json:"total_expense"`
	FixedCost    float64 `json:"fixed_cost"`
	CashFlow     float64 `json:"cash_flow"`

	NetWorthDisplay     string `json:"net_worth_display"`
	TotalExpenseDisplay string `json:"total_expense_display"`
	FixedCostDisplay    string `json:"fixed_cost_display"`
	CashFlowDisplay     string `json:"cash_flow_display"`
}

// Dashboard derives the headline metrics from a single snapshot.
func (s *FinanceService) Dashboard() DashboardReport {
	snap := s.store.Snapshot()

	netWorth := analytics.NetWorth(snap.Assets)
	expense := analytics.TotalExpense(snap.Transactions)
	fixed := analytics.TotalFixedCost(snap.Subscriptions)
	cashFlow := analytics.CashFlow(s.cfg.Engine.IncomeAssumption, fixed, expense)

	privacy := s.cfg.Display.PrivacyMode
	return DashboardReport{
		NetWorth:     netWorth,
		TotalExpense: expense,
		FixedCost:    fixed,
		CashFlow:     cashFlow,

		NetWorthDisplay:     money.Format(netWorth, privacy),
		TotalExpenseDisplay: money.Format(expense, privacy),
		FixedCostDisplay:    money.Format(fixed, privacy),
		CashFlowDisplay:     money.Format(cashFlow, privacy),
	}
}

// Budgets reports per-category utilization for every configured budget.
func (s *FinanceService) Budgets() []analytics.BudgetStatus {
	snap := s.store.Snapshot()
	return analytics.BudgetReport(snap.Budgets, snap.Transactions)
}

// Calendar groups the ledger's transactions by day for calendar rendering.
// The grouping is re-derived on every call; it is never cached state.
func (s *FinanceService) Calendar() map[string]analytics.DayActivity {
	return analytics.GroupByDay(s.store.ListTransactions())
}

// Goals reports progress for every savings goal.
func (s *FinanceService) Goals() []analytics.GoalStatus {
	goals := s.store.ListGoals()
	out := make([]analytics.GoalStatus, 0, len(goals))
	for _, g := range goals {
		out = append(out, analytics.GoalProgress(g))
	}
	return out
}

// ForecastReport is the projection series plus the narrative the UI shows
// beneath the chart.
type ForecastReport struct {
	analytics.ForecastResult
	Narrative string `json:"narrative"`
}

// Forecast projects the balance over the configured horizon.
func (s *FinanceService) Forecast() ForecastReport {
	snap := s.store.Snapshot()

	result := analytics.Forecast(
		analytics.NetWorth(snap.Assets),
		snap.Transactions,
		analytics.ForecastOptions{
			Days:             s.cfg.Engine.ForecastDays,
			DefaultDailyBurn: s.cfg.Engine.DefaultDailyBurn,
			PaycheckAmount:   s.cfg.Engine.PaycheckAmount,
		},
	)

	privacy := s.cfg.Display.PrivacyMode
	return ForecastReport{
		ForecastResult: result,
		Narrative: fmt.Sprintf(
			"Based on your avg daily spend of %s, your projected balance in %d days is %s.",
			money.Format(result.DailyBurn, privacy),
			len(result.Points),
			money.Format(result.FinalBalance, privacy),
		),
	}
}
