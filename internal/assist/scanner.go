package assist

import (
	"context"
	"fmt"
	"time"

	"github.com/sentinelhq/sentinel/internal/model"
)

// StubScanner simulates receipt extraction: it waits a fixed delay and
// returns a canned result. No image bytes are inspected.
type StubScanner struct {
	Delay time.Duration
}

// NewStubScanner returns a scanner with the original two-second scan delay.
func NewStubScanner() *StubScanner {
	return &StubScanner{Delay: 2 * time.Second}
}

func (s *StubScanner) Scan(ctx context.Context, image []byte) (model.Transaction, error) {
	if len(image) == 0 {
		return model.Transaction{}, fmt.Errorf("empty receipt image")
	}

	select {
	case <-ctx.Done():
		return model.Transaction{}, ctx.Err()
	case <-time.After(s.Delay):
	}

	return model.Transaction{
		Date:     time.Now().Format(model.DateLayout),
		Merchant: "Scanned Receipt",
		Amount:   42.50,
		Type:     model.TransactionExpense,
		Category: "Shopping",
	}, nil
}
