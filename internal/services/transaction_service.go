package services

import (
	"context"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

type TransactionStore interface {
	GetAccount(ctx context.Context, userID, accountID int64) (core.Account, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (core.Category, error)
	GetTransaction(ctx context.Context, userID, transactionID int64) (core.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, f storage.TransactionFilter) ([]core.Transaction, error)
	ApplyTransaction(ctx context.Context, t core.Transaction, delta core.Money) (core.Transaction, error)
	RevertTransaction(ctx context.Context, transactionID, accountID int64, delta core.Money) error
}

// EventPublisher announces applied/reverted transactions to the reconciler.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, accountID, transactionID int64, action string) error
}

// TransactionService is the only writer of account balances. Every create
// resolves ownership of both the account and the category before anything is
// written, derives the transaction type from the category, and hands storage
// the insert and the signed balance delta as one atomic unit.
type TransactionService struct {
	store  TransactionStore
	events EventPublisher
}

// NewTransactionService creates the service. events may be nil; ledger events
// are best-effort and never fail the request.
func NewTransactionService(store TransactionStore, events EventPublisher) *TransactionService {
	return &TransactionService{store: store, events: events}
}

// Create records a transaction and moves the account balance. An account or
// category belonging to another user reads as not found and leaves every
// balance untouched.
func (s *TransactionService) Create(ctx context.Context, userID int64, accountID, categoryID int64, amount core.Money, date core.Date, description string) (core.Transaction, error) {
	if !amount.IsPositive() {
		return core.Transaction{}, core.ErrInvalidInput
	}

	account, err := s.store.GetAccount(ctx, userID, accountID)
	if err != nil {
		return core.Transaction{}, err
	}
	category, err := s.store.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{
		AccountID:   account.ID,
		CategoryID:  category.ID,
		Amount:      amount,
		Type:        category.Type,
		Date:        date,
		Description: description,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	t, err = s.store.ApplyTransaction(ctx, t, core.BalanceDelta(category.Type, amount))
	if err != nil {
		return core.Transaction{}, err
	}

	s.publish(ctx, t.AccountID, t.ID, "applied")
	return t, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, transactionID int64) (core.Transaction, error) {
	return s.store.GetTransaction(ctx, userID, transactionID)
}

// List returns the user's transactions, optionally narrowed to one account
// and/or a date range. A filter on someone else's account reads as not found.
func (s *TransactionService) List(ctx context.Context, userID int64, f storage.TransactionFilter) ([]core.Transaction, error) {
	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start.Time) {
		return nil, core.ErrInvalidRange
	}
	if f.AccountID != 0 {
		if _, err := s.store.GetAccount(ctx, userID, f.AccountID); err != nil {
			return nil, err
		}
	}
	return s.store.ListTransactions(ctx, userID, f)
}

// Delete removes a transaction and restores the prior balance cent for cent.
func (s *TransactionService) Delete(ctx context.Context, userID, transactionID int64) error {
	t, err := s.store.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.store.RevertTransaction(ctx, t.ID, t.AccountID, core.RevertDelta(t.Type, t.Amount)); err != nil {
		return err
	}

	s.publish(ctx, t.AccountID, t.ID, "reverted")
	return nil
}

func (s *TransactionService) publish(ctx context.Context, accountID, transactionID int64, action string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLedgerEvent(ctx, accountID, transactionID, action); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"account_id", accountID,
			"transaction_id", transactionID,
			"action", action,
			"error", err)
	}
}
