package assist

import (
	"fmt"
	"strings"

	"github.com/sentinelhq/sentinel/internal/analytics"
	"github.com/sentinelhq/sentinel/internal/money"
	"github.com/sentinelhq/sentinel/internal/store"
)

// RulesAdvisor answers questions by keyword matching against the snapshot.
// It is not natural-language understanding and does not pretend to be.
type RulesAdvisor struct{}

func NewRulesAdvisor() *RulesAdvisor { return &RulesAdvisor{} }

func (a *RulesAdvisor) Reply(question string, snap store.Snapshot) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "spend"):
		total := analytics.TotalExpense(snap.Transactions)
		return fmt.Sprintf("You have spent a total of %s this month.", money.Format(total, false))
	case strings.Contains(q, "coffee"):
		return "You've spent approx $45 on coffee recently."
	default:
		return "I'm analyzing your data..."
	}
}
