package worker

import (
	"context"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/sheets"
	"fintrack/internal/sheets/memory"
	"fintrack/internal/storage"
)

type fakeLedgerStore struct {
	snapshots map[int64]storage.AccountSnapshot
}

func (f *fakeLedgerStore) SnapshotAccount(_ context.Context, accountID int64) (storage.AccountSnapshot, error) {
	s, ok := f.snapshots[accountID]
	if !ok {
		return storage.AccountSnapshot{}, core.ErrNotFound
	}
	return s, nil
}

func (f *fakeLedgerStore) ListAccountIDs(_ context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(f.snapshots))
	for id := range f.snapshots {
		ids = append(ids, id)
	}
	return ids, nil
}

func cents(c int64) core.Money { return core.Money{Cents: c} }

func TestReconciler_ConsistentAccount(t *testing.T) {
	store := &fakeLedgerStore{snapshots: map[int64]storage.AccountSnapshot{
		1: {AccountID: 1, Balance: cents(92475), Initial: cents(100000), SignedLedger: cents(-7525)},
	}}
	mirror := memory.New()
	w := NewReconciler(store, mirror, 10)

	err := w.HandleLedgerEvent(context.Background(), &amqp.LedgerEventMessage{
		AccountID: 1, TransactionID: 7, Action: amqp.ActionApplied,
	})
	if err != nil {
		t.Fatalf("HandleLedgerEvent: %v", err)
	}

	entries := mirror.Entries()
	if len(entries) != 1 {
		t.Fatalf("mirrored %d entries, want 1", len(entries))
	}
	if entries[0].Status != sheets.StatusOK {
		t.Errorf("status = %q, want %q", entries[0].Status, sheets.StatusOK)
	}
	if entries[0].Expected != cents(92475) {
		t.Errorf("expected balance = %v, want 924.75", entries[0].Expected)
	}
}

func TestReconciler_Mismatch(t *testing.T) {
	store := &fakeLedgerStore{snapshots: map[int64]storage.AccountSnapshot{
		1: {AccountID: 1, Balance: cents(92475), Initial: cents(100000), SignedLedger: cents(-10000)},
	}}
	mirror := memory.New()
	w := NewReconciler(store, mirror, 10)

	// A mismatch is reported, not retried
	err := w.HandleLedgerEvent(context.Background(), &amqp.LedgerEventMessage{
		AccountID: 1, TransactionID: 7, Action: amqp.ActionReverted,
	})
	if err != nil {
		t.Fatalf("HandleLedgerEvent should not error on mismatch, got %v", err)
	}

	entries := mirror.Entries()
	if len(entries) != 1 || entries[0].Status != sheets.StatusMismatch {
		t.Fatalf("mirror entries = %+v, want one mismatch", entries)
	}
	if entries[0].Expected != cents(90000) {
		t.Errorf("expected balance = %v, want 900.00", entries[0].Expected)
	}
}

func TestReconciler_DeletedAccount(t *testing.T) {
	w := NewReconciler(&fakeLedgerStore{snapshots: map[int64]storage.AccountSnapshot{}}, memory.New(), 10)

	err := w.HandleLedgerEvent(context.Background(), &amqp.LedgerEventMessage{
		AccountID: 404, TransactionID: 7, Action: amqp.ActionApplied,
	})
	if err != nil {
		t.Fatalf("deleted account should not be an error, got %v", err)
	}
}

func TestReconciler_Sweep(t *testing.T) {
	store := &fakeLedgerStore{snapshots: map[int64]storage.AccountSnapshot{
		1: {AccountID: 1, Balance: cents(1000), Initial: cents(1000), SignedLedger: cents(0)},
		2: {AccountID: 2, Balance: cents(5000), Initial: cents(2000), SignedLedger: cents(3000)},
		3: {AccountID: 3, Balance: cents(9999), Initial: cents(0), SignedLedger: cents(1234)},
	}}
	mirror := memory.New()
	w := NewReconciler(store, mirror, 10)

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	entries := mirror.Entries()
	if len(entries) != 3 {
		t.Fatalf("mirrored %d entries, want 3", len(entries))
	}

	mismatches := 0
	for _, e := range entries {
		if e.Status == sheets.StatusMismatch {
			mismatches++
		}
	}
	if mismatches != 1 {
		t.Errorf("sweep found %d mismatches, want 1", mismatches)
	}
}

func TestReconciler_NilMirror(t *testing.T) {
	store := &fakeLedgerStore{snapshots: map[int64]storage.AccountSnapshot{
		1: {AccountID: 1, Balance: cents(1000), Initial: cents(1000)},
	}}
	w := NewReconciler(store, nil, 10)

	if err := w.Sweep(context.Background()); err != nil {
		t.Fatalf("Sweep with nil mirror: %v", err)
	}
}
