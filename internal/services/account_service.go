package services

import (
	"context"

	"fintrack/internal/core"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, a core.Account) (core.Account, error)
	GetAccount(ctx context.Context, userID, accountID int64) (core.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]core.Account, error)
	UpdateAccount(ctx context.Context, a core.Account) error
	DeleteAccount(ctx context.Context, userID, accountID int64) error
}

// AccountService manages accounts. Balances are never written here: they are
// fixed at creation and then move only through TransactionService.
type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

// Create opens an account with the given opening balance. Negative opening
// balances are allowed (credit cards start in debt).
func (s *AccountService) Create(ctx context.Context, userID int64, name, accountType string, opening core.Money) (core.Account, error) {
	parsedType, err := core.ParseAccountType(accountType)
	if err != nil {
		return core.Account{}, err
	}

	a := core.Account{
		UserID:  userID,
		Name:    name,
		Type:    parsedType,
		Balance: opening,
	}
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}

	return s.store.CreateAccount(ctx, a)
}

func (s *AccountService) Get(ctx context.Context, userID, accountID int64) (core.Account, error) {
	return s.store.GetAccount(ctx, userID, accountID)
}

func (s *AccountService) List(ctx context.Context, userID int64) ([]core.Account, error) {
	return s.store.ListAccounts(ctx, userID)
}

// Update renames or retypes an account; the balance is untouched.
func (s *AccountService) Update(ctx context.Context, userID, accountID int64, name, accountType string) (core.Account, error) {
	parsedType, err := core.ParseAccountType(accountType)
	if err != nil {
		return core.Account{}, err
	}

	a := core.Account{
		ID:     accountID,
		UserID: userID,
		Name:   name,
		Type:   parsedType,
	}
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}

	if err := s.store.UpdateAccount(ctx, a); err != nil {
		return core.Account{}, err
	}
	return s.store.GetAccount(ctx, userID, accountID)
}

// Delete removes the account and, via the schema, every transaction on it.
func (s *AccountService) Delete(ctx context.Context, userID, accountID int64) error {
	return s.store.DeleteAccount(ctx, userID, accountID)
}
