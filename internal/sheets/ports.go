// Package sheets defines the outbound port for mirroring reconciliation
// results to a spreadsheet, with a Google Sheets adapter and an in-memory one
// for tests.
package sheets

import (
	"context"
	"time"

	"fintrack/internal/core"
)

// Entry is one reconciliation outcome: what the account balance was, what
// the ledger says it should be, and whether the two agree.
type Entry struct {
	Timestamp     time.Time
	AccountID     int64
	TransactionID int64
	Action        string
	Balance       core.Money
	Expected      core.Money
	Status        string
}

const (
	StatusOK       = "ok"
	StatusMismatch = "mismatch"
)

// Mirror appends reconciliation entries to an external sheet.
type Mirror interface {
	Append(ctx context.Context, e Entry) error
}
