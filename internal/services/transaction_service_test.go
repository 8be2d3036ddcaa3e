package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// fakeLedgerStore is an in-memory TransactionStore with the same ownership
// semantics as the SQLite repository.
type fakeLedgerStore struct {
	accounts     map[int64]core.Account
	categories   map[int64]core.Category
	transactions map[int64]core.Transaction
	nextTxID     int64
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		accounts:     make(map[int64]core.Account),
		categories:   make(map[int64]core.Category),
		transactions: make(map[int64]core.Transaction),
	}
}

func (f *fakeLedgerStore) GetAccount(_ context.Context, userID, accountID int64) (core.Account, error) {
	a, ok := f.accounts[accountID]
	if !ok || a.UserID != userID {
		return core.Account{}, core.ErrNotFound
	}
	return a, nil
}

func (f *fakeLedgerStore) GetCategory(_ context.Context, userID, categoryID int64) (core.Category, error) {
	c, ok := f.categories[categoryID]
	if !ok || !c.VisibleTo(userID) {
		return core.Category{}, core.ErrNotFound
	}
	return c, nil
}

func (f *fakeLedgerStore) GetTransaction(_ context.Context, userID, transactionID int64) (core.Transaction, error) {
	t, ok := f.transactions[transactionID]
	if !ok {
		return core.Transaction{}, core.ErrNotFound
	}
	if a, ok := f.accounts[t.AccountID]; !ok || a.UserID != userID {
		return core.Transaction{}, core.ErrNotFound
	}
	return t, nil
}

func (f *fakeLedgerStore) ListTransactions(_ context.Context, userID int64, filter storage.TransactionFilter) ([]core.Transaction, error) {
	var out []core.Transaction
	for _, t := range f.transactions {
		a, ok := f.accounts[t.AccountID]
		if !ok || a.UserID != userID {
			continue
		}
		if filter.AccountID != 0 && t.AccountID != filter.AccountID {
			continue
		}
		if !filter.Start.IsZero() && t.Date.Before(filter.Start.Time) {
			continue
		}
		if !filter.End.IsZero() && t.Date.After(filter.End.Time) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeLedgerStore) ApplyTransaction(_ context.Context, t core.Transaction, delta core.Money) (core.Transaction, error) {
	f.nextTxID++
	t.ID = f.nextTxID
	f.transactions[t.ID] = t

	a := f.accounts[t.AccountID]
	a.Balance = a.Balance.Add(delta)
	f.accounts[t.AccountID] = a
	return t, nil
}

func (f *fakeLedgerStore) RevertTransaction(_ context.Context, transactionID, accountID int64, delta core.Money) error {
	if _, ok := f.transactions[transactionID]; !ok {
		return core.ErrNotFound
	}
	delete(f.transactions, transactionID)

	a := f.accounts[accountID]
	a.Balance = a.Balance.Add(delta)
	f.accounts[accountID] = a
	return nil
}

type recordingPublisher struct {
	events []string
	err    error
}

func (p *recordingPublisher) PublishLedgerEvent(_ context.Context, accountID, transactionID int64, action string) error {
	p.events = append(p.events, action)
	return p.err
}

func cents(c int64) core.Money { return core.Money{Cents: c} }

func seedLedger(store *fakeLedgerStore) {
	otherUser := int64(2)
	store.accounts[1] = core.Account{ID: 1, UserID: 1, Name: "Checking", Type: core.AccountBank, Balance: cents(100000)}
	store.accounts[9] = core.Account{ID: 9, UserID: 2, Name: "Foreign", Type: core.AccountBank, Balance: cents(50000)}
	store.categories[10] = core.Category{ID: 10, Name: "Groceries", Type: core.CategoryExpense, Classification: core.ClassificationNeeds}
	store.categories[11] = core.Category{ID: 11, Name: "Salary", Type: core.CategoryIncome}
	store.categories[12] = core.Category{ID: 12, UserID: &otherUser, Name: "Private", Type: core.CategoryExpense}
}

func TestTransactionService_CreateMovesBalance(t *testing.T) {
	store := newFakeLedgerStore()
	seedLedger(store)
	pub := &recordingPublisher{}
	svc := NewTransactionService(store, pub)
	ctx := context.Background()
	date := core.NewDate(2025, time.March, 10)

	// Expense of 75.25 against a 1000.00 balance
	tx, err := svc.Create(ctx, 1, 1, 10, cents(7525), date, "weekly shop")
	if err != nil {
		t.Fatalf("Create expense: %v", err)
	}
	if tx.Type != core.CategoryExpense {
		t.Errorf("transaction type = %v, want expense (derived from category)", tx.Type)
	}
	if got := store.accounts[1].Balance; got != cents(92475) {
		t.Errorf("balance after expense = %v, want 924.75", got)
	}

	// Income of 2500.00 on top
	if _, err := svc.Create(ctx, 1, 1, 11, cents(250000), date, "salary"); err != nil {
		t.Fatalf("Create income: %v", err)
	}
	if got := store.accounts[1].Balance; got != cents(342475) {
		t.Errorf("balance after income = %v, want 3424.75", got)
	}

	// Deleting the expense restores its effect exactly
	if err := svc.Delete(ctx, 1, tx.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := store.accounts[1].Balance; got != cents(350000) {
		t.Errorf("balance after delete = %v, want 3500.00", got)
	}

	wantEvents := []string{"applied", "applied", "reverted"}
	if len(pub.events) != len(wantEvents) {
		t.Fatalf("published %d events, want %d", len(pub.events), len(wantEvents))
	}
	for i, want := range wantEvents {
		if pub.events[i] != want {
			t.Errorf("event[%d] = %q, want %q", i, pub.events[i], want)
		}
	}
}

func TestTransactionService_CreateRejections(t *testing.T) {
	tests := []struct {
		name       string
		accountID  int64
		categoryID int64
		amount     core.Money
		wantErr    error
	}{
		{"foreign account", 9, 10, cents(100), core.ErrNotFound},
		{"unknown account", 404, 10, cents(100), core.ErrNotFound},
		{"foreign category", 1, 12, cents(100), core.ErrNotFound},
		{"unknown category", 1, 404, cents(100), core.ErrNotFound},
		{"zero amount", 1, 10, cents(0), core.ErrInvalidInput},
		{"negative amount", 1, 10, cents(-100), core.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeLedgerStore()
			seedLedger(store)
			svc := NewTransactionService(store, nil)
			date := core.NewDate(2025, time.March, 10)

			_, err := svc.Create(context.Background(), 1, tt.accountID, tt.categoryID, tt.amount, date, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create error = %v, want %v", err, tt.wantErr)
			}
			if got := store.accounts[1].Balance; got != cents(100000) {
				t.Errorf("own balance moved to %v on rejected create", got)
			}
			if got := store.accounts[9].Balance; got != cents(50000) {
				t.Errorf("foreign balance moved to %v on rejected create", got)
			}
			if len(store.transactions) != 0 {
				t.Errorf("rejected create stored %d transactions", len(store.transactions))
			}
		})
	}
}

func TestTransactionService_DeleteForeign(t *testing.T) {
	store := newFakeLedgerStore()
	seedLedger(store)
	svc := NewTransactionService(store, nil)
	ctx := context.Background()

	// A transaction on user 2's account
	tx, err := svc.Create(ctx, 2, 9, 10, cents(1000), core.NewDate(2025, time.March, 1), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, 1, tx.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Delete foreign transaction error = %v, want %v", err, core.ErrNotFound)
	}
	if got := store.accounts[9].Balance; got != cents(49000) {
		t.Errorf("foreign balance = %v, want 490.00 untouched", got)
	}
}

func TestTransactionService_PublishFailureDoesNotFail(t *testing.T) {
	store := newFakeLedgerStore()
	seedLedger(store)
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewTransactionService(store, pub)

	_, err := svc.Create(context.Background(), 1, 1, 10, cents(7525), core.NewDate(2025, time.March, 10), "")
	if err != nil {
		t.Fatalf("Create should succeed when publish fails, got %v", err)
	}
	if got := store.accounts[1].Balance; got != cents(92475) {
		t.Errorf("balance = %v, want 924.75", got)
	}
}

func TestTransactionService_ListFilters(t *testing.T) {
	store := newFakeLedgerStore()
	seedLedger(store)
	svc := NewTransactionService(store, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, 1, 10, cents(1000), core.NewDate(2025, time.January, 5), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, 1, 1, 10, cents(2000), core.NewDate(2025, time.February, 5), ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("date range", func(t *testing.T) {
		got, err := svc.List(ctx, 1, storage.TransactionFilter{
			Start: core.NewDate(2025, time.February, 1),
			End:   core.NewDate(2025, time.February, 28),
		})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].Amount != cents(2000) {
			t.Errorf("List returned %v, want the single February transaction", got)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.List(ctx, 1, storage.TransactionFilter{
			Start: core.NewDate(2025, time.March, 1),
			End:   core.NewDate(2025, time.February, 1),
		})
		if !errors.Is(err, core.ErrInvalidRange) {
			t.Fatalf("List error = %v, want %v", err, core.ErrInvalidRange)
		}
	})

	t.Run("foreign account filter", func(t *testing.T) {
		_, err := svc.List(ctx, 1, storage.TransactionFilter{AccountID: 9})
		if !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("List error = %v, want %v", err, core.ErrNotFound)
		}
	})
}
