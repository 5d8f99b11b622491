// Package assist holds the pluggable capabilities the aggregation core must
// never depend on: receipt scanning and the conversational advisor. Both are
// small ports with stub/rules adapters; a real OCR or language-model client
// slots in behind the same interfaces.
package assist

import (
	"context"

	"github.com/sentinelhq/sentinel/internal/model"
	"github.com/sentinelhq/sentinel/internal/store"
)

// Scanner suggests a transaction from a receipt image.
type Scanner interface {
	// Scan returns a suggested transaction (no ID; the store assigns one).
	Scan(ctx context.Context, image []byte) (model.Transaction, error)
}

// Advisor answers a free-form question about the ledger snapshot.
type Advisor interface {
	Reply(question string, snap store.Snapshot) string
}
