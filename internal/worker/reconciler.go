// Package worker verifies the ledger invariant in the background: every
// account's stored balance must equal its opening balance plus the signed sum
// of its transactions.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/sheets"
	"fintrack/internal/storage"
)

type LedgerStore interface {
	SnapshotAccount(ctx context.Context, accountID int64) (storage.AccountSnapshot, error)
	ListAccountIDs(ctx context.Context) ([]int64, error)
}

// Reconciler checks accounts on demand (per ledger event) and periodically
// (full sweep). A mismatch is reported, never auto-corrected: the ledger is
// the source of truth and a divergent balance means a bug worth keeping
// visible.
type Reconciler struct {
	store     LedgerStore
	mirror    sheets.Mirror
	batchSize int
}

// NewReconciler creates the reconciler. mirror may be nil; results are then
// only logged.
func NewReconciler(store LedgerStore, mirror sheets.Mirror, batchSize int) *Reconciler {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Reconciler{
		store:     store,
		mirror:    mirror,
		batchSize: batchSize,
	}
}

// HandleLedgerEvent verifies the single account named by an AMQP event.
func (w *Reconciler) HandleLedgerEvent(ctx context.Context, msg *amqp.LedgerEventMessage) error {
	_, err := w.checkAccount(ctx, msg.AccountID, msg.TransactionID, msg.Action)
	return err
}

// Sweep verifies every account. It pauses briefly between batches so a large
// database does not monopolize the connection.
func (w *Reconciler) Sweep(ctx context.Context) error {
	ids, err := w.store.ListAccountIDs(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	mismatches := 0
	for i, id := range ids {
		if i > 0 && i%w.batchSize == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}

		ok, err := w.checkAccount(ctx, id, 0, "sweep")
		if err != nil {
			return err
		}
		if !ok {
			mismatches++
		}
	}

	slog.InfoContext(ctx, "Reconciliation sweep finished",
		"accounts", len(ids),
		"mismatches", mismatches)
	return nil
}

// checkAccount reads one consistent snapshot and compares stored balance
// against opening balance plus the signed transaction sum. The bool result is
// false on mismatch. Mismatches do not return an error: retrying the message
// cannot repair a divergent balance.
func (w *Reconciler) checkAccount(ctx context.Context, accountID, transactionID int64, action string) (bool, error) {
	snap, err := w.store.SnapshotAccount(ctx, accountID)
	if errors.Is(err, core.ErrNotFound) {
		// Account deleted after the event was published.
		slog.InfoContext(ctx, "Account gone before reconciliation", "account_id", accountID)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("snapshot account %d: %w", accountID, err)
	}

	expected := snap.Initial.Add(snap.SignedLedger)
	status := sheets.StatusOK
	if snap.Balance != expected {
		status = sheets.StatusMismatch
		slog.ErrorContext(ctx, "Ledger mismatch",
			"account_id", accountID,
			"balance_cents", snap.Balance.Cents,
			"expected_cents", expected.Cents,
			"initial_cents", snap.Initial.Cents,
			"signed_ledger_cents", snap.SignedLedger.Cents)
	}

	w.mirrorEntry(ctx, sheets.Entry{
		Timestamp:     time.Now(),
		AccountID:     accountID,
		TransactionID: transactionID,
		Action:        action,
		Balance:       snap.Balance,
		Expected:      expected,
		Status:        status,
	})

	return status == sheets.StatusOK, nil
}

// mirrorEntry is best-effort: the spreadsheet is an observability surface,
// not part of the invariant.
func (w *Reconciler) mirrorEntry(ctx context.Context, e sheets.Entry) {
	if w.mirror == nil {
		return
	}
	if err := w.mirror.Append(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Failed to mirror reconciliation entry",
			"account_id", e.AccountID,
			"error", err)
	}
}
